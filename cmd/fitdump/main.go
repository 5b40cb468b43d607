// Program fitdump opens a FIT file and prints one line per decoded
// record, exiting non-zero and printing the causal error chain on
// failure.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/vlisivka/garminfit"
)

func main() {
	exitCode := 1
	defer func() { os.Exit(exitCode) }()

	headerOnly := flag.Bool("header", false, "print only the file header")
	verbose := flag.Bool("v", false, "print field values, not just message names")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fitdump [-header] [-v] <path>")
		return
	}

	if err := run(flag.Arg(0), *headerOnly, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, chainString(err))
		return
	}

	exitCode = 0
}

func run(path string, headerOnly, verbose bool) error {
	r, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening file")
	}
	defer r.Close()

	if headerOnly {
		h, err := fit.DecodeHeader(r)
		if err != nil {
			return err
		}
		fmt.Printf("header: size=%d proto=%d profile=%d data_size=%d\n", h.Size, h.ProtoVer, h.ProfileVer, h.DataSize)
		return nil
	}

	f, err := fit.Decode(r)
	if err != nil {
		return err
	}

	for _, rec := range f.Records {
		printRecord(rec, verbose)
	}
	if len(f.UnknownMessages) > 0 || len(f.UnknownFields) > 0 {
		fmt.Printf("# %d unknown message kind(s), %d unknown field(s)\n", len(f.UnknownMessages), len(f.UnknownFields))
	}
	return nil
}

func printRecord(rec fit.Record, verbose bool) {
	if rec.Message == nil {
		return
	}
	m := rec.Message
	name := m.Name
	if !m.Known {
		name = fmt.Sprintf("unknown(%d)", uint16(m.Num))
	}
	if !verbose {
		fmt.Printf("%s\n", name)
		return
	}

	fields := make([]string, 0, len(m.Fields))
	for _, fv := range m.Fields {
		fields = append(fields, fieldString(fv))
	}
	fmt.Printf("%s: %s\n", name, strings.Join(fields, ", "))
}

func fieldString(fv fit.FieldValue) string {
	if !fv.Known {
		return fmt.Sprintf("field(%d)=%x", fv.Num, fv.Data)
	}
	if v, ok := fv.ScaledValue(); ok {
		if fv.Units != "" {
			return fmt.Sprintf("%s=%g%s", fv.Name, v, fv.Units)
		}
		return fmt.Sprintf("%s=%g", fv.Name, v)
	}
	return fmt.Sprintf("%s=%v", fv.Name, fv.Value)
}

// chainString renders err followed by each wrapped cause, separated by
// ": ".
func chainString(err error) string {
	var parts []string
	for err != nil {
		// A pkg/errors stack wrapper has no message of its own beyond
		// its cause's; skip it rather than emit an empty segment.
		if msg := topMessage(err); msg != "" {
			parts = append(parts, msg)
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		next := cause.Cause()
		if next == err {
			break
		}
		err = next
	}
	return strings.Join(parts, ": ")
}

// topMessage returns err's own message with any wrapped cause's message
// stripped back off, since errors.Wrap's Error() already concatenates
// "context: cause" and chainString walks the chain itself.
func topMessage(err error) string {
	msg := err.Error()
	cause, ok := err.(interface{ Cause() error })
	if !ok {
		return msg
	}
	causeMsg := cause.Cause().Error()
	if strings.HasSuffix(msg, causeMsg) {
		msg = strings.TrimSuffix(msg, causeMsg)
		msg = strings.TrimSuffix(msg, ": ")
	}
	return msg
}
