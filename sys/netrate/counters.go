package netrate

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/qtraffics/qtstatus/ex"
)

var (
	ErrInterfaceNotFound = ex.New("interface not found")
	ErrMalformedCounters = ex.New("malformed interface counters")
)

const (
	// DefaultTable is the kernel's per interface traffic table.
	DefaultTable = "/proc/net/dev"

	headerLines = 2

	// Column layout after "name:". Receive: bytes packets errs drop fifo
	// frame compressed multicast, then transmit bytes. Hosts with another
	// layout are not detected and yield wrong numbers.
	receivedField = 0
	sentField     = 8
)

// Sample holds the cumulative byte counters of one interface.
type Sample struct {
	Received uint64
	Sent     uint64
}

// ParseCounters scans an interface counter table for iface and returns its
// cumulative received and sent byte counters.
func ParseCounters(r io.Reader, iface string) (Sample, error) {
	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		if line < headerLines {
			continue
		}
		name, counters, found := strings.Cut(scanner.Text(), ":")
		if !found || strings.TrimSpace(name) != iface {
			continue
		}
		return parseRow(counters)
	}
	if err := scanner.Err(); err != nil {
		return Sample{}, ex.Cause(err, "read counter table")
	}
	return Sample{}, ErrInterfaceNotFound
}

func parseRow(counters string) (Sample, error) {
	fields := strings.Fields(counters)
	if len(fields) <= sentField {
		return Sample{}, ErrMalformedCounters
	}
	received, err := strconv.ParseUint(fields[receivedField], 10, 64)
	if err != nil {
		return Sample{}, ex.Cause(ErrMalformedCounters, "received bytes")
	}
	sent, err := strconv.ParseUint(fields[sentField], 10, 64)
	if err != nil {
		return Sample{}, ex.Cause(ErrMalformedCounters, "sent bytes")
	}
	return Sample{Received: received, Sent: sent}, nil
}
