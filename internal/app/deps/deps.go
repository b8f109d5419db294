package deps

import (
	"context"
	"schedtext/internal/config"
	dl "schedtext/internal/core/domain/logging"
	drl "schedtext/internal/core/domain/rate_limiter"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	dbschedule "schedtext/internal/db/schedule"
	"schedtext/internal/implementations/calendar"
	cronexport "schedtext/internal/implementations/cron_export"
	"schedtext/internal/implementations/logging"
	parsecache "schedtext/internal/implementations/parse_cache"
	ratelimiter "schedtext/internal/implementations/rate_limiter"
	scheduleevents "schedtext/internal/implementations/schedule_events"
	textparser "schedtext/internal/implementations/text_parser"
	"schedtext/internal/rabbitmq"
	schedulepublisher "schedtext/internal/rabbitmq/publishers/schedule_publisher"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	ScheduleRepository schedule.Repository

	RateLimiter drl.RateLimiter

	Calendar     recurrence.Calendar
	Parser       schedule.Parser
	ParseCache   schedule.ParseCache
	CronExporter schedule.CronExporter

	SchedulePublisher schedule.Publisher
	ScheduleEvents    schedule.Publisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.ScheduleRepository = dbschedule.NewPgxScheduleRepository(deps.DB)
	deps.RateLimiter = deps.initRateLimiter()

	deps.Calendar = calendar.New()
	deps.Parser = textparser.New(deps.Calendar)
	deps.ParseCache = parsecache.NewRedis(deps.Redis, deps.Config.ParseCacheTTL)
	deps.CronExporter = cronexport.New()
	deps.ScheduleEvents = scheduleevents.NewSSE(deps.SseServer)

	closeSchedulePublisher := deps.initRabbitmqSchedulePublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeSchedulePublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.LogDebug)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqSchedulePublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.DeclareTopology(
		deps.Config.RabbitmqSchedulesExchange,
		deps.Config.RabbitmqSchedulesQueue,
		deps.Config.RabbitmqSchedulesRoutingKey,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not declare RabbitMQ topology.", dl.Entry("err", err))
		panic(err)
	}

	deps.SchedulePublisher = schedulepublisher.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqSchedulesExchange,
		deps.Config.RabbitmqSchedulesRoutingKey,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down schedule publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Schedule publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initRateLimiter() drl.RateLimiter {
	if deps.Config.IsTestMode {
		return drl.NewFakeRateLimiter(true)
	}
	return ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
}
