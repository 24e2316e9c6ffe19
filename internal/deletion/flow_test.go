package deletion

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	prompts []Prompt
	answers []func(bool)
}

func (p *fakePrompter) Confirm(pr Prompt, answer func(bool)) {
	p.prompts = append(p.prompts, pr)
	p.answers = append(p.answers, answer)
}

type submission struct{ method, action string }

type fakeNavigator struct {
	submitted []submission
	err       error
}

func (n *fakeNavigator) Submit(method, action string) error {
	n.submitted = append(n.submitted, submission{method, action})
	return n.err
}

func newFlow() (*Flow, *fakePrompter, *fakeNavigator, *test.Hook) {
	logger, hook := test.NewNullLogger()
	p := &fakePrompter{}
	n := &fakeNavigator{}
	return NewFlow(p, n, logrus.NewEntry(logger)), p, n, hook
}

func TestClickShowsPrompt(t *testing.T) {
	f, p, n, _ := newFlow()

	require.True(t, f.Click("7"))
	require.Equal(t, Confirming, f.State())
	require.Equal(t, []Prompt{{
		ID:          7,
		Title:       "Are you sure?",
		Text:        "This action cannot be undone!",
		Icon:        "warning",
		ConfirmText: "Yes, delete it!",
		CancelText:  "Cancel",
	}}, p.prompts)
	require.Empty(t, n.submitted)
}

func TestCancelSendsNothing(t *testing.T) {
	f, p, n, _ := newFlow()

	f.Click("7")
	p.answers[0](false)

	require.Equal(t, Idle, f.State())
	require.Empty(t, n.submitted)

	// the flow can be started again
	require.True(t, f.Click("8"))
	require.Len(t, p.prompts, 2)
}

func TestConfirmSubmitsOnce(t *testing.T) {
	f, p, n, _ := newFlow()

	f.Click("7")
	p.answers[0](true)
	p.answers[0](true)

	require.Equal(t, Submitting, f.State())
	require.Equal(t, []submission{{"POST", "/delete/7"}}, n.submitted)
}

func TestClicksIgnoredWhileBusy(t *testing.T) {
	f, p, n, _ := newFlow()

	f.Click("7")
	require.False(t, f.Click("8"))
	require.Len(t, p.prompts, 1)

	p.answers[0](true)
	require.False(t, f.Click("9"))
	require.Len(t, p.prompts, 1)
	require.Len(t, n.submitted, 1)
}

func TestClickInvalidID(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			f, p, _, hook := newFlow()
			require.False(t, f.Click(raw))
			require.Equal(t, Idle, f.State())
			require.Empty(t, p.prompts)
			require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		})
	}
}

func TestSubmitFailureReturnsToIdle(t *testing.T) {
	f, p, n, hook := newFlow()
	n.err = errors.New("socket closed")

	f.Click("3")
	p.answers[0](true)

	require.Equal(t, Idle, f.State())
	require.Equal(t, "submit delete", hook.LastEntry().Message)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "confirming", Confirming.String())
	require.Equal(t, "submitting", Submitting.String())
	require.Equal(t, "unknown", State(9).String())
}
