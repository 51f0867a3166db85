package names

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/dllist/internal/dllist"
	"github.com/sirkon/dllist/internal/names/internal/mocks"
	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

func TestCollect(t *testing.T) {
	type test struct {
		name   string
		input  string
		count  int
		setup  func(l *mocks.MockLogger)
		want   []string
		output string
	}

	tests := []test{
		{
			name:  "plain",
			input: "3\nalice\nbob\ncarol\n",
			count: -1,
			setup: func(l *mocks.MockLogger) {
				gomock.InOrder(
					l.EXPECT().NameAdded(1, "alice"),
					l.EXPECT().NameAdded(2, "bob"),
					l.EXPECT().NameAdded(3, "carol"),
					l.EXPECT().Done(3),
				)
			},
			want:   []string{"alice", "bob", "carol"},
			output: countPrompt + "1: 2: 3: ",
		},
		{
			name:  "invalid-then-negative",
			input: "abc def\n-2\n1\nalice\n",
			count: -1,
			setup: func(l *mocks.MockLogger) {
				gomock.InOrder(
					l.EXPECT().InvalidCount("abc"),
					l.EXPECT().CountOutOfRange(-2),
					l.EXPECT().NameAdded(1, "alice"),
					l.EXPECT().Done(1),
				)
			},
			want: []string{"alice"},
			output: countPrompt + invalidCountMsg +
				countPrompt + outOfRangeMsg +
				countPrompt + "1: ",
		},
		{
			name:  "overflow",
			input: "3000000000\n-3000000000 x\n1\nalice\n",
			count: -1,
			setup: func(l *mocks.MockLogger) {
				gomock.InOrder(
					l.EXPECT().InvalidCount("3000000000"),
					l.EXPECT().InvalidCount("-3000000000"),
					l.EXPECT().NameAdded(1, "alice"),
					l.EXPECT().Done(1),
				)
			},
			want: []string{"alice"},
			output: countPrompt + invalidCountMsg +
				countPrompt + invalidCountMsg +
				countPrompt + "1: ",
		},
		{
			name:  "zero",
			input: "0\n",
			count: -1,
			setup: func(l *mocks.MockLogger) {
				l.EXPECT().Done(0)
			},
			want:   nil,
			output: countPrompt,
		},
		{
			name:  "names-on-one-line",
			input: "2 alice bob",
			count: -1,
			setup: func(l *mocks.MockLogger) {
				l.EXPECT().NameAdded(gomock.Any(), gomock.Any()).Times(2)
				l.EXPECT().Done(2)
			},
			want:   []string{"alice", "bob"},
			output: countPrompt + "1: 2: ",
		},
		{
			name:  "preset-count",
			input: "alice\n",
			count: 1,
			setup: func(l *mocks.MockLogger) {
				l.EXPECT().NameAdded(1, "alice")
				l.EXPECT().Done(1)
			},
			want:   []string{"alice"},
			output: "1: ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := mocks.NewMockLogger(ctrl)
			tt.setup(logger)

			var out bytes.Buffer
			c := NewCollector(strings.NewReader(tt.input), &out, logger)
			res, err := c.Collect(tt.count)
			if tlog.Check(t, err) {
				return
			}

			if got := res.Values(); !deepequal.Equal(tt.want, got) {
				t.Error("names mismatch")
				deepequal.SideBySide(t, "names", tt.want, got)
			}
			if out.String() != tt.output {
				t.Errorf("unexpected output %q, expected %q", out.String(), tt.output)
			}
		})
	}
}

func TestReadCountBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().InvalidCount("2147483648")

	c := NewCollector(strings.NewReader("2147483648\n2147483647\n"), io.Discard, logger)
	count, err := c.ReadCount()
	if tlog.Check(t, err) {
		return
	}
	if count != 2147483647 {
		t.Errorf("expected 2147483647 got %d", count)
	}
}

func TestCollectEndOfInput(t *testing.T) {
	type test struct {
		name  string
		input string
		setup func(l *mocks.MockLogger)
	}

	tests := []test{
		{
			name:  "no-count",
			input: "",
			setup: func(l *mocks.MockLogger) {},
		},
		{
			name:  "only-invalid-count",
			input: "abc",
			setup: func(l *mocks.MockLogger) {
				l.EXPECT().InvalidCount("abc")
			},
		},
		{
			name:  "not-enough-names",
			input: "3\nalice\n",
			setup: func(l *mocks.MockLogger) {
				l.EXPECT().NameAdded(1, "alice")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := mocks.NewMockLogger(ctrl)
			tt.setup(logger)

			c := NewCollector(strings.NewReader(tt.input), io.Discard, logger)
			_, err := c.Collect(-1)
			if !errors.Is(err, io.EOF) {
				t.Errorf("end of input error expected, got %v", err)
				return
			}
			tlog.Log(t, err)
		})
	}
}

func TestPrint(t *testing.T) {
	l := dllist.New[string]()
	l.Push("alice")
	b := l.Push("bob")
	l.Push("carol")
	if tlog.Check(t, l.Delete(b)) {
		return
	}

	var out bytes.Buffer
	if tlog.Check(t, Print(&out, l)) {
		return
	}

	const want = "Names\n=============\nalice\ncarol\n"
	if out.String() != want {
		t.Errorf("expected %q got %q", want, out.String())
	}

	out.Reset()
	if tlog.Check(t, Print(&out, dllist.New[string]())) {
		return
	}
	if out.String() != header {
		t.Errorf("expected only header, got %q", out.String())
	}
}
