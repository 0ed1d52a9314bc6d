package dispatch_test

import (
	"testing"

	"github.com/delhivery/moirai-sub000/dispatch"
	"github.com/delhivery/moirai-sub000/ingest"
	"github.com/delhivery/moirai-sub000/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolve_MissingRequiredFieldRejected(t *testing.T) {
	_, err := dispatch.Resolve(ingest.ShipmentRecord{ID: "S1", Location: "A"})
	assert.ErrorIs(t, err, dispatch.ErrMissingField)
}

func TestResolve_NullDeadlineBecomesInstantMax(t *testing.T) {
	req, err := dispatch.Resolve(ingest.ShipmentRecord{
		ID: "S1", Location: "A", Destination: "B", Time: "1996-01-01 08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, temporal.InstantMax, req.Deadline)
}

func TestResolve_ParsesExplicitDeadlineAndSubItems(t *testing.T) {
	req, err := dispatch.Resolve(ingest.ShipmentRecord{
		ID: "S1", Location: "A", Destination: "B", Time: "1996-01-01 08:00",
		IPDDDestination: strPtr("1996-01-02 10:00"),
		Items: []ingest.ShipmentSubItem{
			{ID: "I1", ConsignmentNumber: "CN1", IPDDDestination: strPtr("1996-01-01 18:00")},
		},
	})
	require.NoError(t, err)
	expected, _ := temporal.ParseDateTime("1996-01-02 10:00")
	assert.Equal(t, expected, req.Deadline)
	require.Len(t, req.SubItems, 1)
	assert.Equal(t, "B", req.SubItems[0].TargetCode)
	itemDeadline, _ := temporal.ParseDateTime("1996-01-01 18:00")
	assert.Equal(t, itemDeadline, req.SubItems[0].Deadline)
}

func TestResolve_MalformedTimeRejected(t *testing.T) {
	_, err := dispatch.Resolve(ingest.ShipmentRecord{
		ID: "S1", Location: "A", Destination: "B", Time: "not-a-time",
	})
	assert.ErrorIs(t, err, dispatch.ErrMalformedTime)
}
