package status

import "fmt"

const lineTemplate = "T %s|L %s|N %s|B %s|%s"

// Line holds the formatted fields of one tick.
type Line struct {
	Temp    string
	Load    string
	Net     string
	Battery string
	Time    string
}

func (l Line) String() string {
	return fmt.Sprintf(lineTemplate, l.Temp, l.Load, l.Net, l.Battery, l.Time)
}
