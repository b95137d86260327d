package renewal_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/grailsmarket/ens-referrals/contracts/registrar"
	"github.com/grailsmarket/ens-referrals/services/renewal"
	"github.com/grailsmarket/ens-referrals/services/renewal/mock"
)

var (
	errUnknown = errors.New("execution reverted")
	oneYear    = big.NewInt(365 * 24 * 60 * 60)
)

func price(base, premium int64) renewal.Price {
	return renewal.Price{Base: big.NewInt(base), Premium: big.NewInt(premium)}
}

func TestQuoteSumsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	oracle := mock.NewMockPriceOracle(ctrl)
	gomock.InOrder(
		oracle.EXPECT().RentPrice(ctx, "alice", oneYear).Return(price(10, 0), nil),
		oracle.EXPECT().RentPrice(ctx, "bob", oneYear).Return(price(20, 5), nil),
		oracle.EXPECT().RentPrice(ctx, "carol", big.NewInt(1)).Return(price(0, 7), nil),
	)

	total, err := renewal.Quote(ctx, oracle, []string{"alice", "bob", "carol"}, []*big.Int{oneYear, oneYear, big.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), total)
}

func TestQuoteArityMismatchCallsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mock.NewMockPriceOracle(ctrl)
	_, err := renewal.Quote(context.Background(), oracle, []string{"alice"}, nil)
	require.ErrorIs(t, err, renewal.ErrArityMismatch)
}

func TestQuoteEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	total, err := renewal.Quote(context.Background(), mock.NewMockPriceOracle(ctrl), nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, total.Sign())
}

func TestQuoteFailureReturnsNoTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mock.NewMockPriceOracle(ctrl)
	oracle.EXPECT().RentPrice(gomock.Any(), "alice", oneYear).Return(price(10, 0), nil)
	oracle.EXPECT().RentPrice(gomock.Any(), "nobody", oneYear).Return(renewal.Price{}, errUnknown)

	total, err := renewal.Quote(context.Background(), oracle, []string{"alice", "nobody", "bob"}, []*big.Int{oneYear, oneYear, oneYear})
	require.Nil(t, total)
	require.ErrorIs(t, err, renewal.ErrUpstreamQuoteFailure)
	require.ErrorIs(t, err, errUnknown)
}

func TestCostHandlesMissingParts(t *testing.T) {
	require.Equal(t, 0, renewal.Cost(renewal.Price{}).Sign())
	require.Equal(t, big.NewInt(3), renewal.Cost(renewal.Price{Premium: big.NewInt(3)}))
}

// controllerService answers eth_call for rentPrice from a fixed table.
type controllerService struct {
	t      *testing.T
	prices map[string]renewal.Price
}

func (s *controllerService) Call(ctx context.Context, args map[string]interface{}, block interface{}) (hexutil.Bytes, error) {
	input, ok := args["input"]
	if !ok {
		input = args["data"]
	}
	data, err := hexutil.Decode(input.(string))
	require.NoError(s.t, err)

	parsed, err := registrar.ETHRegistrarControllerMetaData.GetAbi()
	require.NoError(s.t, err)
	method, err := parsed.MethodById(data[:4])
	require.NoError(s.t, err)
	require.Equal(s.t, "rentPrice", method.Name)

	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(s.t, err)
	p, ok := s.prices[values[0].(string)]
	if !ok {
		return nil, errUnknown
	}
	return method.Outputs.Pack(p)
}

func TestChainPriceOracle(t *testing.T) {
	server := gethrpc.NewServer()
	defer server.Stop()
	require.NoError(t, server.RegisterName("eth", &controllerService{
		t:      t,
		prices: map[string]renewal.Price{"alice": price(10, 2)},
	}))

	client := ethclient.NewClient(gethrpc.DialInProc(server))
	defer client.Close()

	address, err := registrar.ControllerAddress(1)
	require.NoError(t, err)
	caller, err := registrar.NewETHRegistrarControllerCaller(address, client)
	require.NoError(t, err)
	oracle := renewal.NewChainPriceOracle(caller)

	p, err := oracle.RentPrice(context.Background(), "alice", oneYear)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(12), renewal.Cost(p))

	total, err := renewal.Quote(context.Background(), oracle, []string{"alice", "alice"}, []*big.Int{oneYear, oneYear})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(24), total)

	_, err = oracle.RentPrice(context.Background(), "nobody", oneYear)
	require.Error(t, err)
}
