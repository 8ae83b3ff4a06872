package dataloader

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// DefaultDataSize - Number of integers generated when nothing else is configured
const DefaultDataSize int = 900000

// DefaultMaxIntValue - Upper (exclusive) bound of the generated integers when nothing else is configured
const DefaultMaxIntValue int = 1000000

// DefaultFileName - Name of the file the generated integers are written to when nothing else is configured
const DefaultFileName string = "unsorted_integer_array.txt"

// Conf - Configuration for PopulateRandomIntegers
//   - DataSize is the number of integers to generate
//   - MaxIntValue is the exclusive upper bound of each integer
//   - FileName is the file to write the integers to, one per line. An empty name skips writing.
//   - Seed seeds the generator, zero seeds it from the current time
type Conf struct {
	DataSize    int
	MaxIntValue int
	FileName    string
	Seed        int64
}

// DefaultConf - Returns a Conf with the default values
func DefaultConf() Conf {
	return Conf{
		DataSize:    DefaultDataSize,
		MaxIntValue: DefaultMaxIntValue,
		FileName:    DefaultFileName,
	}
}

// PopulateRandomIntegers - Generates conf.DataSize random integers in the range [0, conf.MaxIntValue), writes them
// as a newline delimited text file and returns them.
//
// It returns:
//   - data is the generated integers in the order they were written
//   - err is a standard error, if something went wrong
func PopulateRandomIntegers(conf Conf) (data []int, err error) {
	if conf.DataSize < 0 {
		err = fmt.Errorf("data size must not be negative")
		return
	}
	if conf.MaxIntValue <= 0 {
		err = fmt.Errorf("max int value must be a positive value higher than 0 (zero)")
		return
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	data = make([]int, conf.DataSize)
	for i := range data {
		data[i] = r.Intn(conf.MaxIntValue)
	}

	if conf.FileName != "" {
		err = writeIntegers(conf.FileName, data)
		if err != nil {
			data = nil
			return
		}
	}

	return
}

// writeIntegers - Writes data to fileName, one integer per line, truncating any existing file
func writeIntegers(fileName string, data []int) (err error) {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create data file: %s", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 16)
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err = w.Write(buf); err != nil {
			err = fmt.Errorf("error while writing data file: %s", err)
			return
		}
	}

	err = w.Flush()
	if err != nil {
		err = fmt.Errorf("error while flushing data file: %s", err)
	}

	return
}
