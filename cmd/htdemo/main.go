package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/hashfunc"
)

// Reads commands, one per line, and applies them to a table:
//
//	insert <key> <value>
//	search <key>
//	delete <key>
//	stat
func main() {
	os.Exit(realMain())
}

// realMain - Returns the exit code instead of exiting, so deferred cleanup always runs
func realMain() int {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	var (
		hashEnv   = getEnv("HT_HASH", "internal")
		inputFlag = flag.String("input", "", "command file, stdin if empty")
		hashFlag  = flag.String("hash", hashEnv, "hash algorithm: internal or xxhash")
	)

	flag.Parse()

	var ht *hashtable.Table
	switch *hashFlag {
	case "internal":
		ht = hashtable.New()
	case "xxhash":
		var err error
		ht, err = hashtable.NewWithHashAlgorithm(hashfunc.NewXXHashAlgorithm(1))
		if err != nil {
			log.Printf("Failed to create table: %v", err)
			return 1
		}
	default:
		log.Printf("Unknown hash algorithm %s", *hashFlag)
		return 2
	}
	defer ht.Destroy()

	var in io.Reader = os.Stdin
	if *inputFlag != "" {
		f, err := os.Open(*inputFlag)
		if err != nil {
			log.Printf("Failed to open input: %v", err)
			return 1
		}
		defer func(f *os.File) { _ = f.Close() }(f)
		in = f
	}

	err := run(ht, in, os.Stdout)
	if err != nil {
		log.Printf("Failed: %v", err)
		return 1
	}

	return 0
}

// run - Applies every command read from in to ht and writes the results to out
func run(ht *hashtable.Table, in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "insert" && len(fields) == 3:
			err = ht.Insert(fields[1], fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

		case fields[0] == "search" && len(fields) == 2:
			var value string
			value, err = ht.Search(fields[1])
			if errors.Is(err, hashtable.NoRecordFound{}) {
				_, _ = fmt.Fprintf(out, "%s: not found\n", fields[1])
				continue
			} else if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			_, _ = fmt.Fprintf(out, "%s: %s\n", fields[1], value)

		case fields[0] == "delete" && len(fields) == 2:
			err = ht.Delete(fields[1])
			if errors.Is(err, hashtable.NoRecordFound{}) {
				_, _ = fmt.Fprintf(out, "%s: not found\n", fields[1])
				continue
			} else if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

		case fields[0] == "stat" && len(fields) == 1:
			stat := ht.Stat()
			_, _ = fmt.Fprintf(out, "capacity=%d records=%d tombstones=%d load=%.2f\n",
				stat.Capacity, stat.Records, stat.Tombstones, stat.LoadFactor)

		default:
			return fmt.Errorf("line %d: unknown command %q", lineNo, scanner.Text())
		}
	}

	err = scanner.Err()

	return
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
