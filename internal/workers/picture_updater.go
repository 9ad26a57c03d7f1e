package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// PicStore is the point-update slice of the profile cache the updater
// needs.
type PicStore interface {
	SetProfilePic(ctx context.Context, profileURL, picURL string) error
}

type picUpdate struct {
	profileURL string
	picURL     string
}

// PictureUpdater persists freshly resolved picture URLs back into the
// profile cache off the request path. The queue is bounded and
// rejects when full: a dropped update only means the next picture
// lookup does the same work again.
type PictureUpdater struct {
	Store      PicStore
	Logger     *logrus.Logger
	QueueSize  int
	NumWorkers int
	Timeout    time.Duration

	queue chan picUpdate
	wg    sync.WaitGroup
	once  sync.Once
}

func (u *PictureUpdater) Start(ctx context.Context) {
	u.once.Do(func() {
		if u.QueueSize <= 0 {
			u.QueueSize = 256
		}
		if u.NumWorkers <= 0 {
			u.NumWorkers = 2
		}
		if u.Timeout <= 0 {
			u.Timeout = 10 * time.Second
		}
		if u.Logger == nil {
			u.Logger = logrus.New()
		}
		u.queue = make(chan picUpdate, u.QueueSize)

		for i := 0; i < u.NumWorkers; i++ {
			u.wg.Add(1)
			go u.run(ctx)
		}
	})
}

func (u *PictureUpdater) run(ctx context.Context) {
	defer u.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-u.queue:
			if !ok {
				return
			}
			uctx, cancel := context.WithTimeout(context.Background(), u.Timeout)
			err := u.Store.SetProfilePic(uctx, job.profileURL, job.picURL)
			cancel()
			if err != nil {
				u.Logger.WithError(err).WithField("profile_url", job.profileURL).
					Warn("failed to persist profile picture url")
			}
		}
	}
}

// Enqueue submits a picture update without blocking. Returns false
// when the queue is full and the update was dropped.
func (u *PictureUpdater) Enqueue(profileURL, picURL string) bool {
	if u.queue == nil {
		return false
	}
	select {
	case u.queue <- picUpdate{profileURL: profileURL, picURL: picURL}:
		return true
	default:
		u.Logger.WithField("profile_url", profileURL).
			Warn("picture update queue full, dropping update")
		return false
	}
}

// Stop closes the queue and waits for in-flight updates to finish.
func (u *PictureUpdater) Stop() {
	if u.queue != nil {
		close(u.queue)
	}
	u.wg.Wait()
}
