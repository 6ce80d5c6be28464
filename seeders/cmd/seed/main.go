package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"ops-dashboard/migrations"
	"ops-dashboard/pkg/config"
	"ops-dashboard/pkg/database/postgresql"
	"ops-dashboard/seeders"
)

func main() {
	runMigrate := flag.Bool("migrate", false, "Применить миграции схемы")
	runUsers := flag.Bool("users", false, "Создать демо-пользователей admin / manager / client")
	runAll := flag.Bool("all", false, "Выполнить всё (эквивалентно -migrate -users)")
	flag.Parse()

	if !*runMigrate && !*runUsers && !*runAll {
		log.Println("Не выбрано ни одно действие.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	log.Println("Используется DSN:", cfg.Postgres.DSN)

	if *runAll || *runMigrate {
		db, err := sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("не удалось открыть соединение для миграций: %v", err)
		}
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatalf("не удалось задать диалект миграций: %v", err)
		}
		if err := goose.Up(db, "."); err != nil {
			log.Fatalf("ошибка применения миграций: %v", err)
		}
		if err := db.Close(); err != nil {
			log.Fatalf("ошибка закрытия соединения миграций: %v", err)
		}
		log.Println("Миграции применены")
	}

	if *runAll || *runUsers {
		pool := postgresql.ConnectDB(cfg.Postgres.DSN)
		defer pool.Close()

		if err := seeders.SeedDemoUsers(pool); err != nil {
			log.Fatalf("ошибка создания демо-пользователей: %v", err)
		}
		log.Println("Демо-пользователи созданы")
	}
}
