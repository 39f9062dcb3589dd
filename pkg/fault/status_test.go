package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

func TestToStatus_CodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		def  catalog.Definition
		want codes.Code
	}{
		{def: catalog.ProtocolTimeout, want: codes.DeadlineExceeded},
		{def: catalog.RequestContentTimeout, want: codes.DeadlineExceeded},
		{def: catalog.InvalidURL, want: codes.InvalidArgument},
		{def: catalog.FailedDocumentRequest, want: codes.Unavailable},
		{def: catalog.NoFCP, want: codes.Internal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.def.Code, func(t *testing.T) {
			t.Parallel()

			st := fault.ToStatus(fault.New(tc.def, nil))
			assert.Equal(t, tc.want, st.Code())
			assert.NotEmpty(t, st.Message())
		})
	}
}

func TestStatusRoundTrip(t *testing.T) {
	t.Parallel()

	orig := fault.New(catalog.ProtocolTimeout, map[string]any{
		fault.SubstituteKey: "Page.navigate",
		"protocolMethod":    "Page.navigate",
	})

	got, err := fault.FromStatus(fault.ToStatus(orig))
	require.NoError(t, err)

	assert.Equal(t, orig.Code(), got.Code())
	assert.Equal(t, orig.FriendlyMessage(), got.FriendlyMessage())
	assert.True(t, got.RuntimeError())
	assert.Equal(t, orig.Extra(), got.Extra())
}

func TestFromStatus_NoDetail(t *testing.T) {
	t.Parallel()

	_, err := fault.FromStatus(status.New(codes.Internal, "boom"))
	assert.ErrorIs(t, err, fault.ErrBadRecord)
}
