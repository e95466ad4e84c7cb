package entity

import (
	"encoding/json"
	"fmt"

	"walletauth/internal/errors"
)

// ErrInvalidBridgeMessage is returned for bridge messages that match no known shape.
var ErrInvalidBridgeMessage = errors.New("invalid bridge message")

// BridgeFlow is the message family a session expects from the companion app.
type BridgeFlow string

const (
	BridgeFlowWalletMerge  BridgeFlow = "WALLET_MERGE"
	BridgeFlowExchangeLink BridgeFlow = "EXCHANGE_LINK"
)

// BridgeStatus is the discriminator carried by every bridge message.
type BridgeStatus string

const (
	BridgeStatusConnected BridgeStatus = "connected"
	BridgeStatusSuccess   BridgeStatus = "success"
	BridgeStatusError     BridgeStatus = "error"
)

// BridgeKind is the classified shape of a bridge message.
type BridgeKind string

const (
	BridgeConnected          BridgeKind = "CONNECTED"
	BridgeWalletMergeResult  BridgeKind = "WALLET_MERGE_RESULT"
	BridgeExchangeLinkResult BridgeKind = "EXCHANGE_LINK_RESULT"
)

// WalletMergeCredentials are relayed by the companion app after a wallet merge.
type WalletMergeCredentials struct {
	GUID      string `json:"guid"`
	Password  string `json:"-"`
	SessionID string `json:"sessionId"`
}

// BridgeMessage is a classified message from the mobile pairing channel.
type BridgeMessage struct {
	Kind        BridgeKind
	Status      BridgeStatus
	WalletMerge *WalletMergeCredentials
	ExchangeJWT string
	Error       string
}

// Succeeded reports whether the message carries a success payload.
func (m *BridgeMessage) Succeeded() bool {
	return m.Status == BridgeStatusSuccess
}

// String never includes credentials.
func (m *BridgeMessage) String() string {
	switch {
	case m.Status == BridgeStatusConnected:
		return "bridge connected"
	case m.Status == BridgeStatusError:
		return fmt.Sprintf("bridge %s error: %s", m.Kind, m.Error)
	case m.WalletMerge != nil:
		return fmt.Sprintf("bridge %s success guid=%s", m.Kind, m.WalletMerge.GUID)
	default:
		return fmt.Sprintf("bridge %s success", m.Kind)
	}
}

type bridgeWire struct {
	Status string `json:"status"`
	Data   *struct {
		JWT       *string `json:"jwt"`
		GUID      *string `json:"guid"`
		Password  *string `json:"password"`
		SessionID *string `json:"sessionId"`
	} `json:"data"`
	Error *string `json:"error"`
}

// ClassifyBridgeMessage decodes raw and assigns it to a message shape. Error
// messages carry no payload to tell the flows apart, so they are attributed
// to expect.
func ClassifyBridgeMessage(raw []byte, expect BridgeFlow) (*BridgeMessage, error) {
	var wire bridgeWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errors.Wrap(ErrInvalidBridgeMessage, err.Error())
	}

	switch BridgeStatus(wire.Status) {
	case BridgeStatusConnected:
		return &BridgeMessage{Kind: BridgeConnected, Status: BridgeStatusConnected}, nil

	case BridgeStatusError:
		msg := &BridgeMessage{Kind: expect.resultKind(), Status: BridgeStatusError}
		if wire.Error != nil {
			msg.Error = *wire.Error
		}

		return msg, nil

	case BridgeStatusSuccess:
		if wire.Data == nil {
			return nil, errors.Wrap(ErrInvalidBridgeMessage, "success without data")
		}

		var jwtToken string
		if wire.Data.JWT != nil {
			jwtToken = *wire.Data.JWT
		}
		hasJWT := jwtToken != ""
		hasMerge := wire.Data.GUID != nil && *wire.Data.GUID != "" &&
			wire.Data.Password != nil && wire.Data.SessionID != nil

		exchange := func() *BridgeMessage {
			return &BridgeMessage{Kind: BridgeExchangeLinkResult, Status: BridgeStatusSuccess, ExchangeJWT: jwtToken}
		}
		merge := func() *BridgeMessage {
			return &BridgeMessage{
				Kind:   BridgeWalletMergeResult,
				Status: BridgeStatusSuccess,
				WalletMerge: &WalletMergeCredentials{
					GUID:      *wire.Data.GUID,
					Password:  *wire.Data.Password,
					SessionID: *wire.Data.SessionID,
				},
			}
		}

		switch {
		case hasJWT && hasMerge && expect == BridgeFlowWalletMerge:
			return merge(), nil
		case hasJWT:
			return exchange(), nil
		case hasMerge:
			return merge(), nil
		default:
			return nil, errors.Wrap(ErrInvalidBridgeMessage, "success payload matches no flow")
		}

	default:
		return nil, errors.Wrapf(ErrInvalidBridgeMessage, "status %q", wire.Status)
	}
}

func (f BridgeFlow) resultKind() BridgeKind {
	if f == BridgeFlowWalletMerge {
		return BridgeWalletMergeResult
	}

	return BridgeExchangeLinkResult
}

// SecureChannelResult is the success payload of the secure channel login.
// It records which flow resolved without keeping any credential.
type SecureChannelResult struct {
	Kind      BridgeKind `json:"kind"`
	GUID      string     `json:"guid,omitempty"`
	SessionID string     `json:"sessionId,omitempty"`
}
