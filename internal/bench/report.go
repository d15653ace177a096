package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/valyala/bytebufferpool"
)

// WriteReport renders the benchmark results as one block per test
// size, one implementation per row. Rows are assembled in a pooled
// buffer and written out in a single call.
func WriteReport(w io.Writer, results []Result) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	tw := tabwriter.NewWriter(buf, 5, 4, 4, ' ', 0)
	size := -1
	for _, result := range results {
		if result.Size != size {
			size = result.Size
			fmt.Fprintf(tw, "\nTest size: %d\n", size)
			fmt.Fprintln(tw, "Implementation\tInsert(s)\tRetrieve(s)\tRemove(s)")
		}
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\n",
			result.Implementation, result.Insert, result.Retrieve, result.Remove)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}
