//go:build unit

package dataloader

import (
	"bufio"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestPopulateRandomIntegers(t *testing.T) {
	t.Run("generates integers within range and writes them to file", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), DefaultFileName)
		conf := Conf{DataSize: 1000, MaxIntValue: 50, FileName: fileName, Seed: 123}

		// Execute
		data, err := PopulateRandomIntegers(conf)

		// Check
		assert.NoError(t, err, "generates data")
		assert.Len(t, data, 1000, "correct amount of data")
		for i, v := range data {
			assert.GreaterOrEqualf(t, v, 0, "value #%d not negative", i)
			assert.Lessf(t, v, 50, "value #%d below max", i)
		}

		f, err := os.Open(fileName)
		assert.NoError(t, err, "data file exists")
		defer func(f *os.File) { _ = f.Close() }(f)

		var fromFile []int
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			v, err := strconv.Atoi(scanner.Text())
			assert.NoError(t, err, "line is an integer")
			fromFile = append(fromFile, v)
		}
		assert.Equal(t, data, fromFile, "file holds the same data in the same order")
	})

	t.Run("same seed generates same data", func(t *testing.T) {
		// Prepare
		conf := Conf{DataSize: 100, MaxIntValue: DefaultMaxIntValue, Seed: 42}

		// Execute
		data1, err1 := PopulateRandomIntegers(conf)
		data2, err2 := PopulateRandomIntegers(conf)

		// Check
		assert.NoError(t, err1, "generates data 1")
		assert.NoError(t, err2, "generates data 2")
		assert.Equal(t, data1, data2, "data is reproducible")
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		_, err := PopulateRandomIntegers(Conf{DataSize: -1, MaxIntValue: 10})
		assert.Error(t, err, "negative data size rejected")

		_, err = PopulateRandomIntegers(Conf{DataSize: 10, MaxIntValue: 0})
		assert.Error(t, err, "zero max int value rejected")
	})

	t.Run("default configuration", func(t *testing.T) {
		conf := DefaultConf()
		assert.Equal(t, 900000, conf.DataSize, "default data size")
		assert.Equal(t, 1000000, conf.MaxIntValue, "default max int value")
		assert.Equal(t, "unsorted_integer_array.txt", conf.FileName, "default file name")
	})
}
