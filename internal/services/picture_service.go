package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelens/hirelens/internal/cache"
	"github.com/hirelens/hirelens/internal/providers/proxycurl"
	"github.com/hirelens/hirelens/internal/storage"
	"github.com/hirelens/hirelens/internal/utils"
	"github.com/hirelens/hirelens/internal/workers"
)

const pictureCacheTTL = time.Hour

type PictureProvider interface {
	GetProfilePic(ctx context.Context, profileURL string) (*proxycurl.ProfilePicture, error)
}

type PictureService interface {
	ProfilePic(ctx context.Context, profileURL string) (*proxycurl.ProfilePicture, error)
}

type pictureService struct {
	provider PictureProvider
	cache    cache.Cache
	archiver storage.Uploader        // nil disables archival
	updater  *workers.PictureUpdater // nil disables write-back
	http     *http.Client
	log      *logrus.Logger
}

func NewPictureService(provider PictureProvider, c cache.Cache, archiver storage.Uploader, updater *workers.PictureUpdater, log *logrus.Logger) PictureService {
	if c == nil {
		c = cache.Noop{}
	}
	return &pictureService{
		provider: provider,
		cache:    c,
		archiver: archiver,
		updater:  updater,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
}

// ProfilePic resolves a picture URL for the given profile. The
// provider hands out temporary URLs; when an archiver is configured
// the image is copied to durable storage and that URL is served
// instead. The resolved URL is written back to the profile cache
// best-effort through the bounded updater.
func (s *pictureService) ProfilePic(ctx context.Context, profileURL string) (*proxycurl.ProfilePicture, error) {
	const op = "PictureService.ProfilePic"

	if profileURL == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "profile_url is required", nil)
	}

	key := "pic:" + hashKey(profileURL)
	var cached proxycurl.ProfilePicture
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	pic, err := s.provider.GetProfilePic(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	if s.archiver != nil && pic.TmpProfilePicURL != "" {
		if durable, err := s.archive(ctx, profileURL, pic.TmpProfilePicURL); err != nil {
			s.log.WithError(err).WithField("profile_url", profileURL).
				Warn("failed to archive profile picture")
		} else {
			pic.TmpProfilePicURL = durable
		}
	}

	if s.updater != nil && pic.TmpProfilePicURL != "" {
		s.updater.Enqueue(profileURL, pic.TmpProfilePicURL)
	}

	if err := s.cache.SetJSON(ctx, key, pic, pictureCacheTTL); err != nil {
		s.log.WithError(err).Debug("failed to cache profile picture")
	}
	return pic, nil
}

func (s *pictureService) archive(ctx context.Context, profileURL, picURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, picURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("picture download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	object := "profile-pics/" + hashKey(profileURL)
	return s.archiver.Upload(ctx, object, contentType, resp.Body)
}

func hashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
