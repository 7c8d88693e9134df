package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"kestrel/internal"
)

const loop = `
var a : int <- 0
for a < %d do
	a <- a + 1
end
`

var (
	iterations = flag.Int("n", 1000000, "loop iterations")
	rounds     = flag.Int("rounds", 3, "number of timed runs")
)

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(io.Discard, a...)
}

func (discardPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (discardPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	flag.Parse()
	log := logrus.WithField("iterations", *iterations)

	program, err := internal.Parse("bench.ks", fmt.Sprintf(loop, *iterations))
	if err != nil {
		log.Fatal(err)
	}

	var total time.Duration
	for i := 0; i < *rounds; i++ {
		start := time.Now()
		if err := program.Run(discardPrinter{}); err != nil {
			log.Fatal(err)
		}
		elapsed := time.Since(start)
		total += elapsed
		log.WithFields(logrus.Fields{"round": i + 1, "elapsed": elapsed}).Info("run finished")
	}
	if *rounds > 0 {
		log.WithField("mean", total/time.Duration(*rounds)).Info("done")
	}
}
