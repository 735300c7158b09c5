package bed

import (
	"bufio"
	"fmt"
	"io"
)

// Write renders intervals in tab-separated BED form. The Name column is
// emitted only for intervals that carry one.
func Write(w io.Writer, ivs []Interval) error {
	bw := bufio.NewWriter(w)
	for _, iv := range ivs {
		var err error
		if iv.Name != "" {
			_, err = fmt.Fprintf(bw, "%s\t%d\t%d\t%s\n", iv.Chrom, iv.Start, iv.End, iv.Name)
		} else {
			_, err = fmt.Fprintf(bw, "%s\t%d\t%d\n", iv.Chrom, iv.Start, iv.End)
		}
		if err != nil {
			return fmt.Errorf("write bed line: %w", err)
		}
	}
	return bw.Flush()
}
