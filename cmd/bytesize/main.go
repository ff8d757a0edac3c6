package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Shiyasmohd/evm-from-scratch/binary"
)

const (
	demoNumber = 1007812
	logLevel   = log.InfoLevel
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := run(os.Stdout, demoNumber); err != nil {
		log.WithError(err).Fatal("bytesize demo failed")
	}
}

func run(w io.Writer, number int64) error {
	size := binary.SizeInBytes(number)
	log.WithFields(log.Fields{
		"number": number,
		"bits":   binary.BitLen(number),
		"bytes":  size,
		"fixed":  binary.FixedSizeOf(number),
	}).Info("computed byte size")

	_, err := fmt.Fprintln(w, size)

	return err
}
