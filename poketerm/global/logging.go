package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/nathanieltooley/pokedex/errorutils"
	"github.com/samber/lo"
)

// rollingFileWriter appends to name.log until it reaches maxSize, then shifts every
// log down one index (name.log -> name-1.log, name-1.log -> name-2.log, ...) and starts over.
// Only maxLogs files are kept, counting the current one.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize int64
	maxLogs int
}

func NewRollingFileWriter(fileDir string, fileName string, maxSize int64, maxLogs int) rollingFileWriter {
	absFileDir := errorutils.Must(filepath.Abs(fileDir))

	// Create dir for log files if they dont exist
	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       maxSize,
		maxLogs:       max(maxLogs, 1),
	}
}

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLog(fileName string, index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// getLogs returns the full paths of the files in the log dir matching pattern
func (w rollingFileWriter) getLogs(pattern string) ([]string, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), pattern)
	if err != nil {
		return nil, err
	}

	return lo.Map(logMatches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	}), nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	stats, err := mainLogFile.Stat()
	if err != nil {
		mainLogFile.Close()
		return 0, err
	}

	// if the current log file is small enough, just append to it
	if stats.Size() < w.maxSize {
		defer mainLogFile.Close()
		return mainLogFile.Write(b)
	}

	// close since we are going to rename the main file
	mainLogFile.Close()
	if err := w.rollLogs(); err != nil {
		return 0, err
	}

	mainLogFile, err = os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rollLogs moves the main log to index 1, bumps every archived log up an index,
// and deletes whatever doesn't fit in maxLogs anymore
func (w rollingFileWriter) rollLogs() error {
	logMatches, err := w.getLogs(w.FileName + "-*.log")
	if err != nil {
		return err
	}

	// highest index first so a rename never lands on a file that hasn't moved yet
	slices.SortFunc(logMatches, func(a, b string) int {
		return int(getLogIndex(w.FileName, b) - getLogIndex(w.FileName, a))
	})

	for _, log := range logMatches {
		index := getLogIndex(w.FileName, log)

		// get rid of messed up log files, and any that would go past the limit
		// (maxLogs counts the main log, so archives only go up to maxLogs-1)
		if index < 0 || index+1 >= int64(w.maxLogs) {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(log, w.indexedLog(w.FileName, index+1)); err != nil {
			return err
		}
	}

	if w.maxLogs == 1 {
		return os.Remove(w.getFullFilePath())
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(w.FileName, 1))
}

// getLogIndex pulls the index out of an archived log name (name-3.log -> 3). -1 means the name is malformed.
func getLogIndex(baseFileName string, filePath string) int64 {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, found := strings.CutPrefix(fileName, baseFileName+"-")
	if !found {
		return -1
	}

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil || index < 1 {
		return -1
	}

	return index
}
