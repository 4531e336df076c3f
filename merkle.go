package tokenid

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// MerkleTree is a layered keccak256 tree over reward-claim leaf
// digests. Layer 0 holds the leaves; each layer above hashes sorted
// sibling pairs, promoting an unpaired last node unchanged.
type MerkleTree struct {
	layers [][]common.Hash
}

// BuildMerkleTree constructs the tree for a set of leaf digests.
func BuildMerkleTree(leaves []common.Hash) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	layers := [][]common.Hash{append([]common.Hash(nil), leaves...)}
	for len(layers[len(layers)-1]) > 1 {
		prev := layers[len(layers)-1]
		next := make([]common.Hash, 0, (len(prev)+1)/2)
		for i := 0; i < len(prev); i += 2 {
			if i+1 == len(prev) {
				next = append(next, prev[i])
				continue
			}
			next = append(next, hashPair(prev[i], prev[i+1]))
		}
		layers = append(layers, next)
	}

	return &MerkleTree{layers: layers}, nil
}

// Root returns the tree root.
func (t *MerkleTree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// Proof returns the ordered sibling-hash path proving one leaf digest,
// leaf layer first. Digests that are not leaves of this tree fail with
// ErrLeafNotFound.
func (t *MerkleTree) Proof(leaf common.Hash) ([]common.Hash, error) {
	idx := -1
	for i, l := range t.layers[0] {
		if l == leaf {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrLeafNotFound
	}

	proof := make([]common.Hash, 0, len(t.layers)-1)
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx ^ 1
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		idx /= 2
	}
	return proof, nil
}

// Proofs returns one proof per requested digest, in input order.
func (t *MerkleTree) Proofs(leaves []common.Hash) ([][]common.Hash, error) {
	proofs := make([][]common.Hash, len(leaves))
	for i, leaf := range leaves {
		proof, err := t.Proof(leaf)
		if err != nil {
			return nil, err
		}
		proofs[i] = proof
	}
	return proofs, nil
}

// VerifyProof replays a proof against a root, hashing sorted pairs the
// way the claim contract does.
func VerifyProof(root, leaf common.Hash, proof []common.Hash) bool {
	node := leaf
	for _, sibling := range proof {
		node = hashPair(node, sibling)
	}
	return node == root
}

// ClaimLeaf digests one reward claim: the claiming account, the
// position id it claims against, and the claim amount, packed the way
// the distributor contract hashes its leaves.
func ClaimLeaf(account common.Address, id *uint256.Int, amount *uint256.Int) common.Hash {
	idWord := id.Bytes32()
	amountWord := amount.Bytes32()
	return crypto.Keccak256Hash(account.Bytes(), idWord[:], amountWord[:])
}

// hashPair keccak-hashes a sibling pair in sorted order. Sorted-pair
// hashing keeps proofs position-free.
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}
