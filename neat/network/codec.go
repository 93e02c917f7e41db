package network

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/mhalverson/goneat/neat"
	"github.com/mhalverson/goneat/neat/genetics"
	gmath "github.com/mhalverson/goneat/neat/math"
)

// Wire format (all integers little-endian, self-delimiting):
//
//	input_count            u32
//	output_count            u32
//	node_count              u32
//	nodes[node_count]       {kind u8, aggregation u8, activation u8, bias f64, has_value u8, value f64}
//	connection_count        u32
//	connections[...]        {from u32, to u32, weight f64}
//	order_count             u32
//	order[...]              u32
//
// A node's value field is always written as 8 bytes, zero when has_value
// is 0, so every node record has a fixed 20-byte width.

const nodeRecordSize = 1 + 1 + 1 + 8 + 1 + 8

// MarshalBinary encodes n per the wire format above. It never fails.
func (n *Network) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, n.Inputs)
	_ = binary.Write(&buf, binary.LittleEndian, n.Outputs)

	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(n.Nodes)))
	for _, node := range n.Nodes {
		buf.WriteByte(byte(node.Kind))
		buf.WriteByte(byte(node.Aggregation))
		buf.WriteByte(byte(node.Activation))
		_ = binary.Write(&buf, binary.LittleEndian, node.Bias)
		if node.Value != nil {
			buf.WriteByte(1)
			_ = binary.Write(&buf, binary.LittleEndian, *node.Value)
		} else {
			buf.WriteByte(0)
			_ = binary.Write(&buf, binary.LittleEndian, float64(0))
		}
	}

	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(n.Connections)))
	for _, c := range n.Connections {
		_ = binary.Write(&buf, binary.LittleEndian, c.From)
		_ = binary.Write(&buf, binary.LittleEndian, c.To)
		_ = binary.Write(&buf, binary.LittleEndian, c.Weight)
	}

	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(n.Order)))
	for _, idx := range n.Order {
		_ = binary.Write(&buf, binary.LittleEndian, idx)
	}

	return buf.Bytes(), nil
}

// UnmarshalNetwork decodes data per MarshalBinary's wire format, rebuilding
// the incoming-edge index. It returns a *neat.DecodeError naming the byte
// offset at which decoding failed; on error the returned Network is nil.
func UnmarshalNetwork(data []byte) (*Network, error) {
	r := bytes.NewReader(data)
	offset := 0

	readU32 := func(label string) (uint32, error) {
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, neat.NewDecodeError(offset, "truncated "+label)
		}
		offset += 4
		return v, nil
	}
	readF64 := func(label string) (float64, error) {
		var v float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, neat.NewDecodeError(offset, "truncated "+label)
		}
		offset += 8
		return v, nil
	}
	readByte := func(label string) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			return 0, neat.NewDecodeError(offset, "truncated "+label)
		}
		offset++
		return b, nil
	}

	inputs, err := readU32("input_count")
	if err != nil {
		return nil, err
	}
	outputs, err := readU32("output_count")
	if err != nil {
		return nil, err
	}

	nodeCount, err := readU32("node_count")
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, nodeCount)
	for i := range nodes {
		kind, err := readByte("node kind")
		if err != nil {
			return nil, err
		}
		if kind > byte(genetics.Constant) {
			return nil, neat.NewDecodeError(offset-1, "invalid node kind")
		}
		agg, err := readByte("node aggregation")
		if err != nil {
			return nil, err
		}
		act, err := readByte("node activation")
		if err != nil {
			return nil, err
		}
		bias, err := readF64("node bias")
		if err != nil {
			return nil, err
		}
		hasValue, err := readByte("node value flag")
		if err != nil {
			return nil, err
		}
		value, err := readF64("node value")
		if err != nil {
			return nil, err
		}
		nodes[i] = Node{
			Kind:        genetics.NodeKind(kind),
			Aggregation: gmath.Aggregation(agg),
			Activation:  gmath.ActivationKind(act),
			Bias:        bias,
		}
		if hasValue != 0 {
			v := value
			nodes[i].Value = &v
		}
	}

	connCount, err := readU32("connection_count")
	if err != nil {
		return nil, err
	}
	conns := make([]Connection, connCount)
	incoming := make([][]Connection, nodeCount)
	for i := range conns {
		from, err := readU32("connection from")
		if err != nil {
			return nil, err
		}
		to, err := readU32("connection to")
		if err != nil {
			return nil, err
		}
		weight, err := readF64("connection weight")
		if err != nil {
			return nil, err
		}
		if from >= nodeCount {
			return nil, neat.NewDecodeError(offset, "connection source out of range")
		}
		if to >= nodeCount {
			return nil, neat.NewDecodeError(offset, "connection target out of range")
		}
		conns[i] = Connection{From: from, To: to, Weight: weight}
		incoming[to] = append(incoming[to], conns[i])
	}

	orderCount, err := readU32("order_count")
	if err != nil {
		return nil, err
	}
	order := make([]uint32, orderCount)
	for i := range order {
		idx, err := readU32("order entry")
		if err != nil {
			return nil, err
		}
		if idx >= nodeCount {
			return nil, neat.NewDecodeError(offset, "order entry out of range")
		}
		order[i] = idx
	}

	if r.Len() != 0 {
		return nil, neat.NewDecodeError(offset, "trailing bytes after network")
	}

	return &Network{
		Inputs: inputs, Outputs: outputs,
		Nodes: nodes, Connections: conns, Order: order,
		incoming: incoming,
	}, nil
}

// WriteTo adapts the byte-slice codec to an io.Writer.
func (n *Network) WriteTo(w io.Writer) (int64, error) {
	data, _ := n.MarshalBinary()
	written, err := w.Write(data)
	return int64(written), err
}

// ReadNetwork decodes a Network from the full contents of r.
func ReadNetwork(r io.Reader) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading network bytes")
	}
	return UnmarshalNetwork(data)
}
