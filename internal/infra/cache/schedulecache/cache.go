package schedulecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс нижележащего репозитория расписаний
type ScheduleRepository interface {
	ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache read-through кеш рабочих окон поверх репозитория расписаний
// Не влияет на корректность вычисления слотов, только на латентность:
// при любой ошибке Redis запрос уходит в репозиторий напрямую.
type Cache struct {
	repo   ScheduleRepository
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеш расписаний с указанным TTL
func New(repo ScheduleRepository, client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// ListByProfessionalAndWeekday возвращает рабочие окна, используя кеш
func (c *Cache) ListByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday domain.Weekday) ([]domain.WorkingWindow, error) {
	key := cacheKey(professionalID, weekday)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var windows []domain.WorkingWindow
		if err := json.Unmarshal([]byte(cached), &windows); err == nil {
			return windows, nil
		}
		// Битое значение в кеше - игнорируем и перечитываем из БД
		c.log.Warn("schedulecache: corrupted cache entry for key=%s, falling back to repository", key)
	} else if err != redis.Nil {
		c.log.Warn("schedulecache: redis get failed for key=%s: %v", key, err)
	}

	windows, err := c.repo.ListByProfessionalAndWeekday(ctx, professionalID, weekday)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(windows); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("schedulecache: redis set failed for key=%s: %v", key, err)
		}
	}

	return windows, nil
}

// Invalidate сбрасывает кеш расписания профессионала на все дни недели
// Вызывается после замены расписания
func (c *Cache) Invalidate(ctx context.Context, professionalID int64) {
	keys := make([]string, 0, 7)
	for wd := domain.Sunday; wd <= domain.Saturday; wd++ {
		keys = append(keys, cacheKey(professionalID, wd))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("schedulecache: redis del failed for professional=%d: %v", professionalID, err)
	}
}

func cacheKey(professionalID int64, weekday domain.Weekday) string {
	return fmt.Sprintf("schedule:%d:%d", professionalID, int(weekday))
}
