package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Shiyasmohd/evm-from-scratch/stack"
)

const logLevel = log.InfoLevel

var demoValues = []int32{1, 2, 3}

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := run(os.Stdout, demoValues); err != nil {
		log.WithError(err).Fatal("stack demo failed")
	}
}

// run pushes values, prints the stack, pops once and prints it again.
func run(w io.Writer, values []int32) error {
	s := stack.New()
	for _, v := range values {
		if err := s.Push(v); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, s); err != nil {
		return err
	}

	top, err := s.Pop()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"popped": top, "depth": s.Len()}).Info("popped stack top")

	_, err = fmt.Fprintln(w, s)

	return err
}
