package rpcfacade

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/LerianStudio/launchplan/internal/mretry"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// callTimeout is the single per-call timeout the facade enforces (spec.md
// §5: "a single per-call timeout (default 60s)").
const callTimeout = 60 * time.Second

// HTTPClient is the production Client, a thin JSON-RPC caller over the
// node's HTTP endpoint. spec.md §1 explicitly scopes the RPC transport out
// of the core ("we specify only the operations the core invokes"), so this
// is deliberately minimal stdlib net/http — the core never imports this
// file, only the Client interface.
type HTTPClient struct {
	endpoint string
	http     *http.Client
	log      mlog.Logger
	retry    mretry.Config
}

// NewHTTPClient builds a production client against endpoint, retrying
// send_and_confirm per the policy spec.md §4.4 mandates.
func NewHTTPClient(endpoint string, log mlog.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		http:     &http.Client{Timeout: callTimeout},
		log:      log,
		retry:    mretry.DefaultRpcConfig(),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) call(ctx context.Context, method string, params []any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var rr rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return fmt.Errorf("rpcfacade: decode response for %s: %w", method, err)
	}
	if rr.Error != nil {
		return fmt.Errorf("rpcfacade: %s: %s (code %d)", method, rr.Error.Message, rr.Error.Code)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(rr.Result, out)
}

func (c *HTTPClient) RecentBlockhash(ctx context.Context) (string, error) {
	var out struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", nil, &out); err != nil {
		return "", err
	}
	return out.Value.Blockhash, nil
}

func (c *HTTPClient) AccountExists(ctx context.Context, pubkey solana.Pubkey) (bool, error) {
	var out struct {
		Value json.RawMessage `json:"value"`
	}
	if err := c.call(ctx, "getAccountInfo", []any{pubkey.String()}, &out); err != nil {
		return false, err
	}
	return len(out.Value) > 0 && string(out.Value) != "null", nil
}

func (c *HTTPClient) GetBalance(ctx context.Context, pubkey solana.Pubkey) (int64, error) {
	var out struct {
		Value int64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{pubkey.String()}, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

// Simulate is never retried, per spec.md §4.4.
func (c *HTTPClient) Simulate(ctx context.Context, tx Transaction, signers []Signer) (SimResult, error) {
	encoded := encodeTransaction(tx, signers)

	var out struct {
		Value struct {
			Err  json.RawMessage `json:"err"`
			Logs []string        `json:"logs"`
		} `json:"value"`
	}
	if err := c.call(ctx, "simulateTransaction", []any{encoded}, &out); err != nil {
		return SimResult{}, err
	}

	res := SimResult{Logs: out.Value.Logs}
	if len(out.Value.Err) > 0 && string(out.Value.Err) != "null" {
		res.Err = string(out.Value.Err)
	}
	return res, nil
}

// SendAndConfirm enables preflight (skip_preflight=false per spec.md §4.4)
// and makes up to mretry.RpcMaxRetries attempts in total with exponential
// backoff between them.
func (c *HTTPClient) SendAndConfirm(ctx context.Context, tx Transaction, signers []Signer) (string, error) {
	encoded := encodeTransaction(tx, signers)

	var sig string
	err := mretry.Do(ctx, c.retry, func() error {
		var out string
		if err := c.call(ctx, "sendTransaction", []any{encoded, map[string]any{"skipPreflight": false}}, &out); err != nil {
			c.log.Warnf("send_and_confirm attempt failed: %s", err)
			return err
		}
		sig = out
		return nil
	})
	if err != nil {
		return "", errs.RpcFailed{Op: "send_and_confirm", Err: err}
	}
	return sig, nil
}

func (c *HTTPClient) Close() error { return nil }

// encodeTransaction is a placeholder wire encoding: a real implementation
// would sign every instruction's message bytes and base64 the full wire
// transaction. Out of scope for the core per spec.md §1 ("the RPC transport
// itself"); internal/ixbuild owns the instruction bytes that matter.
func encodeTransaction(tx Transaction, signers []Signer) string {
	var buf bytes.Buffer
	for _, ix := range tx.Instructions {
		buf.Write(ix.Data)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
