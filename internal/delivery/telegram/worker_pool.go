package telegram

import (
	"context"
	"log"
	"sync"
	"time"
)

// searchRequest is one free-text search queued for a worker.
type searchRequest struct {
	ctx    context.Context
	userID int64
	chatID int64
	text   string
}

// workerPool processes search requests in parallel with per-user rate
// limiting, so one chatty user cannot starve the rest.
type workerPool struct {
	requestQueue chan *searchRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup

	rateLimiter   map[int64]*userRateLimit
	rateLimiterMu sync.RWMutex
}

type userRateLimit struct {
	lastRequest  time.Time
	requestCount int
	mu           sync.Mutex
}

const (
	maxRequestsPerSecond   = 3
	requestQueueSize       = 100
	defaultWorkerCount     = 10
	searchRequestTimeout   = 45 * time.Second
	rateLimiterCleanupTime = 5 * time.Minute
	rateLimiterMaxIdleTime = 10 * time.Minute
)

func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		requestQueue: make(chan *searchRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		rateLimiter:  make(map[int64]*userRateLimit),
	}
}

func (wp *workerPool) start(ctx context.Context) {
	log.Printf("Starting %d workers for search processing", wp.workerCount)
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
	go wp.cleanupRateLimits(ctx)
}

func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		case req, ok := <-wp.requestQueue:
			if !ok {
				log.Printf("Worker %d shutting down (queue closed)", id)
				return
			}
			if req == nil {
				continue
			}
			if !wp.checkRateLimit(req.userID) {
				wp.handler.sendMessage(req.chatID, "⚠️ Слишком много запросов. Подождите немного.")
				continue
			}
			wp.processWithTimeout(req)
		}
	}
}

func (wp *workerPool) processWithTimeout(req *searchRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, searchRequestTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while processing request from user %d: %v", req.userID, r)
			wp.handler.sendMessage(req.chatID, "⚠️ Внутренняя ошибка. Попробуйте ещё раз.")
		}
	}()

	wp.handler.handleFlightRequest(ctx, req)
}

func (wp *workerPool) checkRateLimit(userID int64) bool {
	wp.rateLimiterMu.Lock()
	limiter, exists := wp.rateLimiter[userID]
	if !exists {
		wp.rateLimiter[userID] = &userRateLimit{lastRequest: time.Now(), requestCount: 1}
		wp.rateLimiterMu.Unlock()
		return true
	}
	wp.rateLimiterMu.Unlock()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	if now.Sub(limiter.lastRequest) >= time.Second {
		limiter.requestCount = 1
		limiter.lastRequest = now
		return true
	}
	if limiter.requestCount >= maxRequestsPerSecond {
		log.Printf("Rate limit exceeded for user %d", userID)
		return false
	}
	limiter.requestCount++
	return true
}

func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			var toDelete []int64

			wp.rateLimiterMu.RLock()
			for userID, limiter := range wp.rateLimiter {
				limiter.mu.Lock()
				if now.Sub(limiter.lastRequest) > rateLimiterMaxIdleTime {
					toDelete = append(toDelete, userID)
				}
				limiter.mu.Unlock()
			}
			wp.rateLimiterMu.RUnlock()

			if len(toDelete) > 0 {
				wp.rateLimiterMu.Lock()
				for _, userID := range toDelete {
					delete(wp.rateLimiter, userID)
				}
				wp.rateLimiterMu.Unlock()
				log.Printf("Cleaned up %d inactive rate limiters", len(toDelete))
			}
		}
	}
}

// submit queues a request, rejecting it with a user-visible message when
// the queue is full.
func (wp *workerPool) submit(req *searchRequest) bool {
	select {
	case wp.requestQueue <- req:
		return true
	default:
		log.Printf("Worker pool queue is full (%d/%d), rejecting request from user %d",
			len(wp.requestQueue), requestQueueSize, req.userID)
		wp.handler.sendMessage(req.chatID, "⚠️ Бот сейчас перегружен. Попробуйте через минуту.")
		return false
	}
}

func (wp *workerPool) shutdown() {
	log.Printf("Shutting down worker pool, %d requests in queue", len(wp.requestQueue))
	close(wp.requestQueue)
	wp.wg.Wait()
	log.Println("Worker pool shut down")
}
