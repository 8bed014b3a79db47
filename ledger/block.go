package ledger

import "github.com/luca-patrignani/three-card-poker/domain/poker"

// Block holds one finished round and links it to the block before.
type Block struct {
	Index     int               `json:"index"`
	Timestamp int64             `json:"timestamp"`
	PrevHash  string            `json:"prev_hash"`
	Hash      string            `json:"hash"`
	Record    poker.RoundRecord `json:"record"`
}
