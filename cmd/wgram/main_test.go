package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aabizri/wgram"
	"github.com/aabizri/wgram/interchange/wgif"
	"github.com/aabizri/wgram/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestListen(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		f, err := os.Open("testdata/stream.wgif.yml")
		require.NoError(t, err)

		var out bytes.Buffer
		err = listen(&out, f, logging.NewNop(), options{workers: workers})
		f.Close()
		require.NoError(t, err)

		got := lines(out.String())
		require.Len(t, got, 4, "workers %d", workers)
		assert.Equal(t, []string{"the cat runs", "a dog runs", "the cat sleeps"}, got[:3])
		assert.Len(t, got[3], 109)
		assert.True(t, strings.HasPrefix(got[3], "xxxxxx__"))
	}
}

func TestListen_SeedOverride(t *testing.T) {
	f, err := os.Open("testdata/stream.wgif.yml")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	err = listen(&out, f, logging.NewNop(), options{workers: 2, seed: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"the cat runs", "the cat runs", "the cat runs", "x"}, lines(out.String()))
}

func TestListen_Strict(t *testing.T) {
	f, err := os.Open("testdata/stream.wgif.yml")
	require.NoError(t, err)
	defer f.Close()

	var out, logs bytes.Buffer
	err = listen(&out, f, logging.New(&logs, 0), options{workers: 3, strict: true})
	require.Error(t, err)
	assert.Equal(t, "1 of 4 documents failed", err.Error())
	assert.Equal(t, []string{"the cat runs", "a dog runs", "the cat sleeps"}, lines(out.String()))
	assert.Contains(t, logs.String(), "document=3")
	assert.Contains(t, logs.String(), errTruncated.Error())
}

func TestListen_Errors(t *testing.T) {
	tests := map[string]string{
		"undecodable":     "start: S\nrules: 3\n",
		"unimportable":    "start: S\nrules:\n  - from: S\n    weight: \"0\"\n",
		"expansion fails": "start: S\nseed: 3\nrules:\n  - from: S\n    to: [X]\n",
		"invalid seed":    "start: S\nterminals:\n  x: x\nrules:\n  - from: S\n    to: [x]\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := listen(&out, strings.NewReader(doc), logging.NewNop(), options{workers: 2})
			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}

func TestRootCmd(t *testing.T) {
	f, err := os.Open("testdata/single.wgif.yml")
	require.NoError(t, err)
	defer f.Close()

	var out, logs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(f)
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs([]string{"--workers", "2", "--seed", "42", "-v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "the cat sleeps\n", out.String())
	assert.Contains(t, logs.String(), "document expanded")
}

func TestRootCmd_InvalidWorkers(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--workers", "0"})

	assert.ErrorContains(t, cmd.Execute(), "--workers")
}

func BenchmarkPipeline(b *testing.B) {
	f, err := os.Open("testdata/single.wgif.yml")
	if err != nil {
		b.Fatalf("Couldn't open test data file: %v", err)
	}
	defer f.Close()

	format, err := wgif.NewDecoder(f).Decode()
	if err != nil {
		b.Fatalf("Couldn't parse wgif: %v", err)
	}
	parameters, err := format.Import()
	if err != nil {
		b.Fatalf("Couldn't import wgif: %v", err)
	}

	in, out := buildPipeline(options{workers: 4})

	// Dev-null the out
	done := make(chan struct{})
	go func() {
		for range out {
		}
		close(done)
	}()

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		parameters.Seed = uint64(n + 1)
		e := wgram.New(parameters)
		b.StartTimer()
		in <- e
	}
	close(in)
	<-done
}
