package cli

import (
	"context"
	"testing"

	"contacts/internal/delivery"
	domainerrors "contacts/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeywordDispatcher() *Dispatcher {
	d := NewDispatcher()
	for _, keyword := range []string{
		"add", "phone add", "phone change", "phone remove", "days to birthday",
		"hello", "change", "phone", "show all", "search", "close",
	} {
		d.Handle(keyword, func(_ context.Context, cmd *delivery.Command) (string, error) {
			return cmd.Keyword, nil
		})
	}

	return d
}

func TestDispatcher_Parse(t *testing.T) {
	tests := []struct {
		input   string
		keyword string
		args    []string
	}{
		{"add Mia 12345", "add", []string{"Mia", "12345"}},
		{"Phone Add Mia 12345", "phone add", []string{"Mia", "12345"}},
		{"phone change Mia 1 2", "phone change", []string{"Mia", "1", "2"}},
		{"phone remove Mia 1", "phone remove", []string{"Mia", "1"}},
		{"phone Mia", "phone", []string{"Mia"}},
		{"DAYS TO BIRTHDAY Mia", "days to birthday", []string{"Mia"}},
		{"  show all  ", "show all", []string{}},
		{"change Mia 1", "change", []string{"Mia", "1"}},
		{"search   12", "search", []string{"12"}},
		{"hello", "hello", []string{}},
		// Prefix matching does not require a word boundary.
		{"address 1", "add", []string{"ress", "1"}},
		// Only the leading keyword is stripped.
		{"add Mia add", "add", []string{"Mia", "add"}},
	}

	d := newKeywordDispatcher()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, handler, ok := d.Parse(tt.input)
			require.True(t, ok)
			require.NotNil(t, handler)
			assert.Equal(t, tt.keyword, cmd.Keyword)
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}

func TestDispatcher_Parse_Unknown(t *testing.T) {
	d := newKeywordDispatcher()

	for _, input := range []string{"", "foo", "ad", "show"} {
		_, _, ok := d.Parse(input)
		assert.False(t, ok, input)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	d := newKeywordDispatcher()

	out, err := d.Dispatch(context.Background(), "phone Mia")
	require.NoError(t, err)
	assert.Equal(t, "phone", out)

	_, err = d.Dispatch(context.Background(), "unknown")
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownCommand))
	assert.Equal(t, "Sorry, unknown command", domainerrors.UserMessage(err))
}

func TestDispatcher_Use_Order(t *testing.T) {
	d := NewDispatcher()
	d.Handle("save", func(context.Context, *delivery.Command) (string, error) {
		return "handler", nil
	})

	wrap := func(name string) delivery.CommandMiddleware {
		return func(next delivery.CommandHandler) delivery.CommandHandler {
			return func(ctx context.Context, cmd *delivery.Command) (string, error) {
				out, err := next(ctx, cmd)

				return name + "(" + out + ")", err
			}
		}
	}
	d.Use(wrap("outer"), wrap("inner"))

	out, err := d.Dispatch(context.Background(), "save")
	require.NoError(t, err)
	assert.Equal(t, "outer(inner(handler))", out)
	assert.Equal(t, []string{"save"}, d.Keywords())
}
