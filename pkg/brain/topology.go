package brain

// BuildNoMemory connects every source directly to every sink. No memory
// neurons are allocated. Brain length is nSources*nSinks.
func BuildNoMemory(nSources, nSinks int) Brain {
	conns := make([]Connection, 0, nSources*nSinks)
	for s := 0; s < nSources; s++ {
		for k := 0; k < nSinks; k++ {
			conns = append(conns, Connection{ReadKind: EndSource, ReadIdx: s, WriteKind: EndSink, WriteIdx: k})
		}
	}
	return Brain{Connections: conns, WeightDelta: newDeltas(len(conns))}
}

// BuildLayered allocates L layers of K memory neurons each and wires
// source -> layer0 -> layer1 -> ... -> layer(L-1) -> sink, with no
// direct source-sink connections. Brain length is
// nSources*K + (L-1)*K*K + K*nSinks.
func BuildLayered(nSources, nSinks, layers, perLayer int) Brain {
	memCount := layers * perLayer
	conns := make([]Connection, 0, nSources*perLayer+(layers-1)*perLayer*perLayer+perLayer*nSinks)

	for s := 0; s < nSources; s++ {
		for m := 0; m < perLayer; m++ {
			conns = append(conns, Connection{ReadKind: EndSource, ReadIdx: s, WriteKind: EndMemory, WriteIdx: m})
		}
	}

	for w := 0; w < layers-1; w++ {
		layerStart := w * perLayer
		nextStart := (w + 1) * perLayer
		for i := 0; i < perLayer; i++ {
			for j := 0; j < perLayer; j++ {
				conns = append(conns, Connection{ReadKind: EndMemory, ReadIdx: layerStart + i, WriteKind: EndMemory, WriteIdx: nextStart + j})
			}
		}
	}

	lastStart := (layers - 1) * perLayer
	for i := 0; i < perLayer; i++ {
		for k := 0; k < nSinks; k++ {
			conns = append(conns, Connection{ReadKind: EndMemory, ReadIdx: lastStart + i, WriteKind: EndSink, WriteIdx: k})
		}
	}

	return Brain{Connections: conns, WeightDelta: newDeltas(len(conns)), MemoryCount: memCount}
}

// BuildFullyConnected allocates L*K memory neurons and connects every
// source to every sink and every memory neuron, every memory neuron to
// every other memory neuron, and every memory neuron to every sink —
// in that order, so that all memory writes precede all memory reads.
// Brain length is nSources*nSinks + nSources*L*K + (L*K)^2 + L*K*nSinks.
func BuildFullyConnected(nSources, nSinks, layers, perLayer int) Brain {
	memCount := layers * perLayer
	conns := make([]Connection, 0, nSources*nSinks+nSources*memCount+memCount*memCount+memCount*nSinks)

	for s := 0; s < nSources; s++ {
		for k := 0; k < nSinks; k++ {
			conns = append(conns, Connection{ReadKind: EndSource, ReadIdx: s, WriteKind: EndSink, WriteIdx: k})
		}
		for m := 0; m < memCount; m++ {
			conns = append(conns, Connection{ReadKind: EndSource, ReadIdx: s, WriteKind: EndMemory, WriteIdx: m})
		}
	}

	for i := 0; i < memCount; i++ {
		for j := 0; j < memCount; j++ {
			conns = append(conns, Connection{ReadKind: EndMemory, ReadIdx: i, WriteKind: EndMemory, WriteIdx: j})
		}
	}

	for i := 0; i < memCount; i++ {
		for k := 0; k < nSinks; k++ {
			conns = append(conns, Connection{ReadKind: EndMemory, ReadIdx: i, WriteKind: EndSink, WriteIdx: k})
		}
	}

	return Brain{Connections: conns, WeightDelta: newDeltas(len(conns)), MemoryCount: memCount}
}

// Build dispatches to the named topology builder. kind must already be
// normalised (lowercase, trimmed) as core.Config.Validate does.
func Build(kind string, nSources, nSinks, layers, perLayer int) Brain {
	switch kind {
	case "layered":
		return BuildLayered(nSources, nSinks, layers, perLayer)
	case "fully_connected":
		return BuildFullyConnected(nSources, nSinks, layers, perLayer)
	default:
		return BuildNoMemory(nSources, nSinks)
	}
}
