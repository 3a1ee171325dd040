package transferclient

import "context"

//go:generate mockery --name=TransferInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_transfer_client.go

// TransferInterface moves exactly one unit of an asset between two holding
// accounts. The service behind it guarantees all-or-nothing semantics; there
// are no partial transfer states.
type TransferInterface interface {
	Transfer(ctx context.Context, assetID, from, to string) error
}
