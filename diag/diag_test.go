package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport_FormatsProgramPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Program: "memctl", Sink: &buf}

	r.Report(0, nil, "cannot grow beyond %d pages", 512)

	require.Equal(t, "memctl: cannot grow beyond 512 pages\n", buf.String())
	require.Equal(t, uint64(1), r.Count())
}

func TestReport_AppendsCause(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Program: "memctl", Sink: &buf}

	r.Report(0, errors.New("no space left on device"), "arena grow failed")

	require.Equal(t, "memctl: arena grow failed: no space left on device\n", buf.String())
}

func TestReport_NonZeroStatusTerminates(t *testing.T) {
	var buf bytes.Buffer
	var status int
	r := &Reporter{
		Program: "memctl",
		Sink:    &buf,
		Exit: func(s int) {
			status = s
			panic("exit")
		},
	}

	require.PanicsWithValue(t, "exit", func() {
		r.Report(2, nil, "memory exhausted")
	})
	require.Equal(t, 2, status)
	require.Equal(t, "memctl: memory exhausted\n", buf.String())
}

func TestReportAt_IncludesLocation(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Program: "memctl", Sink: &buf}

	r.ReportAt(0, nil, "input.dat", 17, "short read")

	require.Equal(t, "memctl:input.dat:17: short read\n", buf.String())
}

func TestReportAt_OnePerLineSuppressesDuplicates(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Program: "memctl", Sink: &buf, OnePerLine: true}

	r.ReportAt(0, nil, "input.dat", 17, "short read")
	r.ReportAt(0, nil, "input.dat", 17, "short read")
	r.ReportAt(0, nil, "input.dat", 18, "short read")

	require.Equal(t,
		"memctl:input.dat:17: short read\n"+
			"memctl:input.dat:18: short read\n",
		buf.String())
	require.Equal(t, uint64(2), r.Count())
}

func TestCount_TracksEveryMessage(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Program: "memctl", Sink: &buf}

	for i := 0; i < 5; i++ {
		r.Report(0, nil, "message %d", i)
	}
	require.Equal(t, uint64(5), r.Count())
}
