package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/codepic/bitseries"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"
	"golang.org/x/sys/unix"
)

var (
	duration = flag.Duration("duration", 0, "how long to run. zero runs until interrupted")
	interval = flag.Duration("interval", time.Second, "how often to report")
	addr     = flag.String("addr", "", "address to serve stats on. empty disables it")
	batch    = flag.Int("batch", 1024, "pushes per timed batch")

	initial bitseries.Series

	rng pcg.T
)

func init() {
	flag.Var(&initial, "initial", "binary string to start the series from")
}

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	defer stats()
	if *addr != "" {
		go http.ListenAndServe(*addr, monhandler.Handler{})
	}

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

var pushThunk mon.Thunk

// pushBatch feeds n random bits into the series.
func pushBatch(s *bitseries.Series, n int) {
	var err error
	timer := pushThunk.Start()
	for i := 0; i < n; i++ {
		s.Push(rng.Uint64()&1 == 1)
	}
	timer.Stop(&err)
}

// audit checks the invariants that must hold for any series value.
func audit(s bitseries.Series) (err error) {
	defer mon.Start().Stop(&err)

	str := s.String()
	if len(str) != bitseries.Width {
		return errs.New("string has length %d", len(str))
	}
	if got := bitseries.FromString(str); got != s {
		return errs.New("round trip: %s != %s", got, s)
	}
	if n := s.SetSize(); n > bitseries.Width {
		return errs.New("set size out of range: %d", n)
	}
	return nil
}

func run() error {
	if *batch <= 0 || *interval <= 0 {
		return errs.New("batch and interval must be positive")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT)
	defer signal.Stop(ch)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	width := len(fmt.Sprint(bitseries.MaxValue))
	series, pushes := initial, 0

	for {
		select {
		case <-ch:
			fmt.Println()
			return nil

		case <-deadline:
			return nil

		case <-ticker.C:
			if err := audit(series); err != nil {
				return errs.Wrap(err)
			}
			fmt.Printf("%s\t(%*d)\t%10d\n", series, width, series.Uint64(), pushes)
			pushes = 0

		default:
			pushBatch(&series, *batch)
			pushes += *batch
		}
	}
}
