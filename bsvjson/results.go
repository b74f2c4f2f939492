// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bsvjson provides result types for the JSON-RPC replies where a
// Bitcoin SV node differs from btcd.  All other replies are decoded with the
// btcjson types.
package bsvjson

// GetMiningInfoResult models the data from the getmininginfo command as
// returned by a Bitcoin SV node.
type GetMiningInfoResult struct {
	Blocks           int64   `json:"blocks"`
	CurrentBlockSize uint64  `json:"currentblocksize"`
	CurrentBlockTx   uint64  `json:"currentblocktx"`
	Difficulty       float64 `json:"difficulty"`
	Errors           string  `json:"errors"`
	NetworkHashPS    float64 `json:"networkhashps"`
	PooledTx         uint64  `json:"pooledtx"`
	Chain            string  `json:"chain"`
}

// StreamInfo describes one of the streams of a peer's association.
type StreamInfo struct {
	StreamType   string `json:"streamtype"`
	LastSend     int64  `json:"lastsend"`
	LastRecv     int64  `json:"lastrecv"`
	BytesSent    uint64 `json:"bytessent"`
	BytesRecv    uint64 `json:"bytesrecv"`
	SendSize     uint64 `json:"sendsize"`
	RecvSize     uint64 `json:"recvsize"`
	SendMemory   uint64 `json:"sendmemory"`
	SpotRecvBW   uint64 `json:"spotrecvbw"`
	MinuteRecvBW uint64 `json:"minuterecvbw"`
	PauseRecv    bool   `json:"pauserecv"`
}

// GetPeerInfoResult models the data returned from the getpeerinfo command by
// a Bitcoin SV node.  Fields only some node versions report are omitted from
// the output when absent.
type GetPeerInfoResult struct {
	ID             int32             `json:"id"`
	Addr           string            `json:"addr"`
	AddrLocal      string            `json:"addrlocal,omitempty"`
	Services       string            `json:"services"`
	RelayTxes      bool              `json:"relaytxes"`
	LastSend       int64             `json:"lastsend"`
	LastRecv       int64             `json:"lastrecv"`
	SendSize       uint64            `json:"sendsize"`
	RecvSize       uint64            `json:"recvsize"`
	SendMemory     uint64            `json:"sendmemory,omitempty"`
	PauseSend      bool              `json:"pausesend"`
	UnpauseRecv    bool              `json:"unpauserecv"`
	BytesSent      uint64            `json:"bytessent"`
	BytesRecv      uint64            `json:"bytesrecv"`
	AvgRecvBW      uint64            `json:"avgrecvbw"`
	AssocID        string            `json:"associd,omitempty"`
	StreamPolicy   string            `json:"streampolicy,omitempty"`
	Streams        []StreamInfo      `json:"streams,omitempty"`
	AuthConn       bool              `json:"authconn"`
	ConnTime       int64             `json:"conntime"`
	TimeOffset     int64             `json:"timeoffset"`
	PingTime       float64           `json:"pingtime"`
	MinPing        float64           `json:"minping"`
	PingWait       float64           `json:"pingwait,omitempty"`
	Version        uint32            `json:"version"`
	SubVer         string            `json:"subver"`
	Inbound        bool              `json:"inbound"`
	AddNode        bool              `json:"addnode"`
	StartingHeight int32             `json:"startingheight"`
	TxnInvSize     uint64            `json:"txninvsize"`
	BanScore       int32             `json:"banscore"`
	SyncedHeaders  int32             `json:"synced_headers"`
	SyncedBlocks   int32             `json:"synced_blocks"`
	Inflight       []int32           `json:"inflight"`
	Whitelisted    bool              `json:"whitelisted"`
	BytesSentMsg   map[string]uint64 `json:"bytessent_per_msg"`
	BytesRecvMsg   map[string]uint64 `json:"bytesrecv_per_msg"`
}
