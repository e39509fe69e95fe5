package main

import (
	"context"
	"flag"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"

	"github.com/Fuad-Aliyev/employee-api/internal/config"
	"github.com/Fuad-Aliyev/employee-api/internal/metrics"
	"github.com/Fuad-Aliyev/employee-api/internal/models"
	"github.com/Fuad-Aliyev/employee-api/internal/repository"
)

var sampleNames = [][2]string{
	{"Fuad", "Aliyev"},
	{"John", "Thomson"},
	{"Jane", "Johnson"},
	{"Robert", "Miles"},
	{"Alice", "Walker"},
	{"Peter", "Novak"},
	{"Maria", "Santos"},
	{"Oleh", "Kovalenko"},
}

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear")
	count := flag.Int("count", len(sampleNames), "Number of employees to insert")
	flag.Parse()

	ctx := context.Background()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	repo := repository.NewEmployeeRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))

	switch *action {
	case "seed":
		for i := range *count {
			name := sampleNames[i%len(sampleNames)]
			employee := models.Employee{
				FirstName: name[0],
				LastName:  name[1],
				Email:     randomail.GenerateRandomEmail(),
			}

			saved, err := repo.SaveEmployee(ctx, employee)
			if err != nil {
				log.Fatalf("Failed to seed employee %s %s: %v", employee.FirstName, employee.LastName, err)
			}
			log.Printf("Seeded employee %d: %s %s <%s>", saved.ID, saved.FirstName, saved.LastName, saved.Email)
		}
	case "clear":
		if _, err := dbpool.Exec(ctx, "TRUNCATE TABLE employees RESTART IDENTITY"); err != nil {
			log.Fatalf("Failed to clear employees: %v", err)
		}
		log.Println("Employees table cleared")
	default:
		log.Printf("Unknown action: %s", *action)
		flag.PrintDefaults()
	}
}
