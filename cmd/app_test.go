package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const testMarket = `{"symbol":"BTC","name":"Bitcoin","price":50000}
{"symbol":"ETH","name":"Ethereum","price":2000}
`

// withTempFiles points the global market and snapshot flags at temp files
// for the duration of the test.
func withTempFiles(t *testing.T, market, snapshot string) {
	t.Helper()
	tmp := t.TempDir()

	marketPath := filepath.Join(tmp, "market.jsonl")
	if err := os.WriteFile(marketPath, []byte(market), 0644); err != nil {
		t.Fatalf("failed to write market file: %v", err)
	}
	snapshotPath := filepath.Join(tmp, "portfolio.jsonl")
	if snapshot != "" {
		if err := os.WriteFile(snapshotPath, []byte(snapshot), 0644); err != nil {
			t.Fatalf("failed to write snapshot file: %v", err)
		}
	}

	oldMarket, oldSnapshot := marketFile, snapshotFile
	marketFile, snapshotFile = &marketPath, &snapshotPath
	t.Cleanup(func() { marketFile, snapshotFile = oldMarket, oldSnapshot })
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return sb.String()
}

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestBuyCreatesSnapshot(t *testing.T) {
	withTempFiles(t, testMarket, "")

	if status := execute(t, &buyCmd{}, "-s", "btc", "-q", "2"); status != subcommands.ExitSuccess {
		t.Fatalf("buy exited with %v, want success", status)
	}

	content, err := os.ReadFile(*snapshotFile)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	want := `{"symbol":"BTC","name":"Bitcoin","price":50000,"quantity":2}` + "\n"
	if string(content) != want {
		t.Errorf("snapshot = %q, want %q", content, want)
	}
}

func TestBuyRejectsUnknownSymbol(t *testing.T) {
	withTempFiles(t, testMarket, "")

	if status := execute(t, &buyCmd{}, "-s", "DOGE", "-q", "2"); status != subcommands.ExitUsageError {
		t.Errorf("buy of unknown symbol exited with %v, want usage error", status)
	}
}

func TestBuyRejectsNonPositiveQuantity(t *testing.T) {
	withTempFiles(t, testMarket, "")

	if status := execute(t, &buyCmd{}, "-s", "BTC", "-q", "0"); status != subcommands.ExitUsageError {
		t.Errorf("buy of zero quantity exited with %v, want usage error", status)
	}
}

func TestSellClosesPosition(t *testing.T) {
	snapshot := `{"symbol":"BTC","name":"Bitcoin","price":50000,"quantity":2}` + "\n"
	withTempFiles(t, testMarket, snapshot)

	// selling more than held absorbs the excess and closes the position.
	if status := execute(t, &sellCmd{}, "-s", "BTC", "-q", "5"); status != subcommands.ExitSuccess {
		t.Fatalf("sell exited with %v, want success", status)
	}

	content, err := os.ReadFile(*snapshotFile)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("snapshot = %q, want empty after closing the only position", content)
	}
}

func TestSellRejectsNonPositiveQuantity(t *testing.T) {
	snapshot := `{"symbol":"BTC","name":"Bitcoin","price":50000,"quantity":2}` + "\n"
	withTempFiles(t, testMarket, snapshot)

	// a negative sell must not turn into an acquisition.
	if status := execute(t, &sellCmd{}, "-s", "BTC", "-q", "-5"); status != subcommands.ExitUsageError {
		t.Fatalf("sell of negative quantity exited with %v, want usage error", status)
	}

	content, err := os.ReadFile(*snapshotFile)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if string(content) != snapshot {
		t.Errorf("snapshot = %q after rejected sell, want unchanged %q", content, snapshot)
	}
}

func TestSellNotHeld(t *testing.T) {
	withTempFiles(t, testMarket, "")

	out := captureStdout(t, func() {
		if status := execute(t, &sellCmd{}, "-s", "ETH", "-q", "1"); status != subcommands.ExitSuccess {
			t.Errorf("sell of a symbol not held exited with %v, want success", status)
		}
	})

	if !strings.Contains(out, "Nothing to sell, ETH is not held") {
		t.Errorf("output = %q, want the not-held message", out)
	}
	if strings.Contains(out, "position closed") {
		t.Errorf("output = %q claims a position was closed on a no-op", out)
	}
}

func TestFmtDropsUnknownAndMerges(t *testing.T) {
	snapshot := `{"symbol":"BTC","name":"Bitcoin","price":1,"quantity":2}
{"symbol":"DOGE","name":"Dogecoin","price":0.1,"quantity":1000}
{"symbol":"BTC","name":"Bitcoin","price":1,"quantity":3}
`
	withTempFiles(t, testMarket, snapshot)

	if status := execute(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt exited with %v, want success", status)
	}

	content, err := os.ReadFile(*snapshotFile)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	got := string(content)
	want := `{"symbol":"BTC","name":"Bitcoin","price":50000,"quantity":5}` + "\n"
	if got != want {
		t.Errorf("canonical snapshot = %q, want %q", got, want)
	}
	if strings.Contains(got, "DOGE") {
		t.Error("canonical snapshot still contains the unknown DOGE record")
	}
}

func TestTickRewritesMarket(t *testing.T) {
	withTempFiles(t, testMarket, "")

	if status := execute(t, &tickCmd{}, "-n", "3", "-seed", "42"); status != subcommands.ExitSuccess {
		t.Fatalf("tick exited with %v, want success", status)
	}

	content, err := os.ReadFile(*marketFile)
	if err != nil {
		t.Fatalf("failed to read market file: %v", err)
	}
	if string(content) == testMarket {
		t.Error("market file unchanged after three ticks")
	}
}
