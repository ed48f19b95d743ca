package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimasfauzan/perpus-service/config"
	"github.com/dimasfauzan/perpus-service/internal/handler"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"github.com/dimasfauzan/perpus-service/internal/server"
	"github.com/dimasfauzan/perpus-service/internal/service"
	"github.com/dimasfauzan/perpus-service/migrations"
	"github.com/dimasfauzan/perpus-service/pkg/kafka"
	"github.com/dimasfauzan/perpus-service/pkg/logger"
	"github.com/dimasfauzan/perpus-service/pkg/postgres"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "perpus")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	queue := service.NewNopEnqueuer()
	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		queue = service.NewEnqueuer(producer)
	}

	svc := handler.Services{
		Auth:       service.NewAuth(repo, repo, log),
		Anggota:    service.NewAnggota(repo, log),
		Kategori:   service.NewKategori(repo, log),
		Buku:       service.NewBuku(repo, log),
		Petugas:    service.NewPetugas(repo, log),
		Peminjaman: service.NewPeminjaman(repo, repo, repo, queue, log),
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
