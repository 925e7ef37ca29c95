package components

import (
	"time"

	"studiobooking/internal/infra/redisstore"
	"studiobooking/internal/infra/repository"
	"studiobooking/internal/infra/sms"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/usecase/commands"
	"studiobooking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// deviceCacheTTL bounds staleness of the trusted-device read cache; the
// database stays the source of truth.
const deviceCacheTTL = 5 * time.Minute

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingIntervalReader)),
		),
		fx.Annotate(
			repository.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			repository.NewTrustedDeviceRepository,
			fx.As(new(commands.TrustedDeviceRepository)),
		),
		fx.Annotate(
			redisstore.NewOTPStore,
			fx.As(new(commands.OTPStore)),
		),
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
		),
		fx.Annotate(
			NewDeviceHashCache,
			fx.As(new(commands.DeviceHashCache)),
		),
		fx.Annotate(
			sms.NewLogSender,
			fx.As(new(commands.OTPSender)),
		),
	),
)

func NewDraftStore(client *redis.Client, cfg config.BookingConfig) *redisstore.DraftStore {
	return redisstore.NewDraftStore(client, cfg.DraftTTL)
}

func NewDeviceHashCache(client *redis.Client) *redisstore.DeviceHashCache {
	return redisstore.NewDeviceHashCache(client, deviceCacheTTL)
}
