package ui

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderLastWriteWins(t *testing.T) {
	r := &Recorder{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.SetText("x")
		}()
	}
	wg.Wait()
	r.SetText("final")

	assert.Equal(t, "final", r.Text())
	assert.Len(t, r.History(), 51)
}

func TestTerminalPiped(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)
	assert.False(t, term.interactive)

	term.SetText("...thinking...")
	term.SetText("42")
	assert.Empty(t, out.String())

	term.Flush()
	assert.Equal(t, "42\n", out.String())
}

func TestTerminalInteractive(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{out: &out, interactive: true}

	term.SetText("...thinking...")
	term.SetText("42")
	term.Flush()

	assert.Equal(t, "...thinking...\r\x1b[K42\n", out.String())
}

func TestTerminalInteractiveMultiline(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{out: &out, interactive: true}

	term.SetText("Uploading...")
	term.SetText("line one\nline two")
	term.Flush()

	assert.Equal(t, "Uploading...\r\x1b[Kline one\nline two\n", out.String())
}
