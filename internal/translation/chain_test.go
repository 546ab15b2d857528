package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	result string
	err    error
	calls  int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Translate(context.Context, string, string, string) (string, error) {
	s.calls++
	return s.result, s.err
}

func TestChain_FirstProviderWins(t *testing.T) {
	req := require.New(t)
	primary := &stubProvider{name: "primary", result: "Sawubona"}
	secondary := &stubProvider{name: "secondary", result: "unused"}
	chain := NewChain(nil, newTestFallback(), primary, secondary)

	out := chain.Translate(context.Background(), "hello", "en", "zu")

	req.Equal("Sawubona", out)
	req.Equal(1, primary.calls)
	req.Zero(secondary.calls)
}

func TestChain_FailureMovesToNextProvider(t *testing.T) {
	req := require.New(t)
	primary := &stubProvider{name: "primary", err: errors.New("connection refused")}
	secondary := &stubProvider{name: "secondary", result: "Sawubona"}
	chain := NewChain(nil, newTestFallback(), primary, secondary)

	out := chain.Translate(context.Background(), "hello", "en", "zu")

	req.Equal("Sawubona", out)
	req.Equal(1, primary.calls)
	req.Equal(1, secondary.calls)
}

func TestChain_EmptyResultTreatedAsFailure(t *testing.T) {
	req := require.New(t)
	primary := &stubProvider{name: "primary", result: "   "}
	secondary := &stubProvider{name: "secondary", result: "Sawubona"}
	chain := NewChain(nil, newTestFallback(), primary, secondary)

	out := chain.Translate(context.Background(), "hello", "en", "zu")

	req.Equal("Sawubona", out)
	req.Equal(1, secondary.calls)
}

func TestChain_DegradesToDictionary(t *testing.T) {
	req := require.New(t)
	primary := &stubProvider{name: "primary", err: errors.New("timeout")}
	secondary := &stubProvider{name: "secondary", err: errors.New("timeout")}
	chain := NewChain(nil, newTestFallback(), primary, secondary)

	out := chain.Translate(context.Background(), "hello", "en", "zu")
	req.Equal("Sawubona", out)

	out = chain.Translate(context.Background(), "xyz123", "en", "zu")
	req.Equal(UnavailableMarker+" xyz123", out)
}

func TestChain_NoProviders_UsesDictionary(t *testing.T) {
	req := require.New(t)
	chain := NewChain(nil, newTestFallback())

	out := chain.Translate(context.Background(), "thank you", "en", "xh")
	req.Equal("Enkosi", out)
}
