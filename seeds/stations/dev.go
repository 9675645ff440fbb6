package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedStation struct {
	name          string
	accuracyOrder int
	island        string
	region        string
	province      string
	municipality  string
	barangay      string
	status        int
	lat           float64
	lng           float64
}

var devStations = []seedStation{
	{"MMA-1", 1, "Luzon", "NCR", "Metro Manila", "Quezon City", "Diliman", 1, 14.6513, 121.0490},
	{"MMA-2", 2, "Luzon", "NCR", "Metro Manila", "Quezon City", "UP Campus", 1, 14.6542, 121.0612},
	{"MMA-3", 2, "Luzon", "NCR", "Metro Manila", "Manila", "Ermita", 1, 14.5832, 120.9794},
	{"CEB-1", 1, "Visayas", "Region VII", "Cebu", "Cebu City", "Capitol Site", 1, 10.3157, 123.8854},
	{"CEB-2", 3, "Visayas", "Region VII", "Cebu", "Mandaue", "Centro", 1, 10.3237, 123.9223},
	{"DVO-1", 1, "Mindanao", "Region XI", "Davao del Sur", "Davao City", "Poblacion", 1, 7.0731, 125.6128},
	// Retired marker, excluded from default catalog reads.
	{"MMA-9", 3, "Luzon", "NCR", "Metro Manila", "Manila", "Intramuros", 5, 14.5896, 120.9747},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("Seeding station catalog...")

	for _, st := range devStations {
		fmt.Printf("  Inserting %s...\n", st.name)
		_, err = pool.Exec(ctx,
			`INSERT INTO stations (station_name, accuracy_order, island, region, province, municipality, barangay, status, wgs84_lat, wgs84_lng)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (station_name) DO UPDATE SET
			     accuracy_order = EXCLUDED.accuracy_order,
			     status = EXCLUDED.status,
			     wgs84_lat = EXCLUDED.wgs84_lat,
			     wgs84_lng = EXCLUDED.wgs84_lng,
			     updated_at = now()`,
			st.name, st.accuracyOrder, st.island, st.region, st.province, st.municipality, st.barangay, st.status, st.lat, st.lng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert station %s: %v\n", st.name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Done.")
}
