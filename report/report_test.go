package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vacuum/planner"
	"github.com/katalvlaran/vacuum/report"
)

var corridor = planner.Result{
	Found:     true,
	Actions:   []planner.Action{planner.East, planner.East, planner.Vacuum},
	Generated: 3,
	Expanded:  4,
}

func TestText_Success(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Deliver(report.NewText(&buf), corridor))
	assert.Equal(t, "E\nE\nV\n3 nodes generated\n4 nodes expanded\n", buf.String())
}

func TestText_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	res := planner.Result{Found: true, Actions: []planner.Action{}, Expanded: 1}
	require.NoError(t, report.Deliver(report.NewText(&buf), res))
	assert.Equal(t, "0 nodes generated\n1 nodes expanded\n", buf.String())
}

func TestText_Failure(t *testing.T) {
	var buf bytes.Buffer
	// counters of a failed search are never printed
	require.NoError(t, report.Deliver(report.NewText(&buf), planner.Result{Generated: 9, Expanded: 9}))
	assert.Equal(t, report.FailureMessage+"\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Deliver(report.NewYAML(&buf), corridor))

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Found)
	assert.Equal(t, []string{"E", "E", "V"}, doc.Actions)
	assert.Equal(t, 3, doc.Generated)
	assert.Equal(t, 4, doc.Expanded)

	buf.Reset()
	require.NoError(t, report.Deliver(report.NewYAML(&buf), planner.Result{}))
	var failure report.FailureDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &failure))
	assert.False(t, failure.Found)
	assert.Equal(t, report.FailureMessage, failure.Message)
	assert.NotContains(t, buf.String(), "generated")
}

func TestYAML_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	res := planner.Result{Found: true, Actions: []planner.Action{}, Generated: 0, Expanded: 1}
	require.NoError(t, report.Deliver(report.NewYAML(&buf), res))
	assert.Equal(t, "found: true\nactions: []\ngenerated: 0\nexpanded: 1\n", buf.String())

	// a nil plan encodes the same way
	buf.Reset()
	res.Actions = nil
	require.NoError(t, report.Deliver(report.NewYAML(&buf), res))
	assert.Contains(t, buf.String(), "actions: []\n")
}

func TestNew(t *testing.T) {
	r, err := report.New("", &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &report.Text{}, r)

	r, err = report.New(report.FormatYAML, &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &report.YAML{}, r)

	_, err = report.New("xml", &bytes.Buffer{})
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestText_WriteError(t *testing.T) {
	require.Error(t, report.Deliver(report.NewText(failingWriter{}), corridor))
	require.Error(t, report.Deliver(report.NewText(failingWriter{}), planner.Result{}))
}
