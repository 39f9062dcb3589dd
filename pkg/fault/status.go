package fault

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
)

// ToStatus encodes f as a gRPC status for the family's RPC boundaries. The
// wire record travels as a structpb detail so the peer can reconstruct the
// fault with FromStatus; the status message alone still carries the friendly
// message for clients that ignore details.
func ToStatus(f *Fault) *status.Status {
	st := status.New(grpcCode(f.code), f.friendlyMessage)

	detail, err := structpb.NewStruct(Marshal(f))
	if err != nil {
		// An extra holds a value structpb cannot represent; the status
		// still carries code and message.
		return st
	}
	if withDetail, err := st.WithDetails(detail); err == nil {
		return withDetail
	}
	return st
}

// FromStatus reconstructs a fault from a status produced by ToStatus.
func FromStatus(st *status.Status) (*Fault, error) {
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		return Unmarshal(s.AsMap())
	}
	return nil, fmt.Errorf("%w: status carries no fault detail", ErrBadRecord)
}

func grpcCode(code string) codes.Code {
	switch code {
	case catalog.ProtocolTimeout.Code, catalog.RequestContentTimeout.Code:
		return codes.DeadlineExceeded
	case catalog.InvalidURL.Code:
		return codes.InvalidArgument
	case catalog.NoDocumentRequest.Code,
		catalog.FailedDocumentRequest.Code,
		catalog.ErroredDocumentRequest.Code,
		catalog.InsecureDocumentRequest.Code:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
