package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/gostonefire/hashtable/internal/dataloader"
	"github.com/gostonefire/hashtable/internal/sorting"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	defaults := dataloader.DefaultConf()

	var (
		dataSizeEnv = getEnv("DATA_SIZE", strconv.Itoa(defaults.DataSize))
		maxIntEnv   = getEnv("MAX_INT_VALUE", strconv.Itoa(defaults.MaxIntValue))
		dataFileEnv = getEnv("DATA_FILE", defaults.FileName)

		dataSizeFlag = flag.Int("size", atoiDefault(dataSizeEnv, defaults.DataSize), "number of integers to generate")
		maxIntFlag   = flag.Int("max", atoiDefault(maxIntEnv, defaults.MaxIntValue), "exclusive upper bound of generated integers")
		dataFileFlag = flag.String("file", dataFileEnv, "file to write the generated integers to")
		seedFlag     = flag.Int64("seed", 0, "random seed, 0 seeds from the current time")
	)

	flag.Parse()

	conf := dataloader.Conf{
		DataSize:    *dataSizeFlag,
		MaxIntValue: *maxIntFlag,
		FileName:    *dataFileFlag,
		Seed:        *seedFlag,
	}

	data, err := dataloader.PopulateRandomIntegers(conf)
	if err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	log.Printf("Generated %d integers into %s", len(data), conf.FileName)

	log.Println("Starting the sort...")
	start := time.Now()
	sorting.SelectionSort(data)
	log.Printf("Sorting time: %f", time.Since(start).Seconds())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func atoiDefault(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return defaultValue
}
