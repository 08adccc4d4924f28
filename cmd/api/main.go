package main

import (
	"context"

	"forum_api/internal/config"
	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
	"forum_api/internal/repository/redis"
	"forum_api/internal/router"
	"forum_api/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		log.Fatal("mysql init failed", zap.Error(err))
	}
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Tag{},
		&model.PostTag{},
		&model.PostVote{},
		&model.CommentVote{},
		&model.EventOutbox{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	tokens := pkg.NewTokenService(
		[]byte(cfg.Token.AccessSecret),
		[]byte(cfg.Token.RefreshSecret),
		cfg.Token.AccessTTL,
		cfg.Token.RefreshTTL,
	)

	sender := service.LogSender(log)
	if len(cfg.Kafka.Brokers) > 0 {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relayer := service.NewOutboxRelayer(mysql.NewOutboxRepository(mysql.DB), sender, log)
	go relayer.Run(ctx)

	r := router.InitRouter(cfg, log, mysql.DB, tokens)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
