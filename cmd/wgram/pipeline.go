package main

import (
	"reflect"

	"github.com/aabizri/wgram"
	"github.com/pkg/errors"
)

const (
	sequencerQueueSize = 5
	orderInQueueSize   = 5
	orderOutQueueSize  = 0
	outQueueSize       = 5
)

// errTruncated is reported in strict mode for results still holding non-terminals
var errTruncated = errors.New("expansion truncated by the size bound")

type order struct {
	expander *wgram.Expander
	seq      int

	result wgram.Result
	err    error
}

// buildPipeline launches the sequencer, the workers and the resolver.
// Closing in drains the pipeline, then closes out.
func buildPipeline(opts options) (in chan<- *wgram.Expander, out <-chan *order) {
	sequencerQueue := make(chan *wgram.Expander, sequencerQueueSize)
	orderInQueue := make(chan *order, orderInQueueSize)
	outQueue := make(chan *order, outQueueSize)
	orderOutQueues := make([]<-chan *order, opts.workers)

	go sequence(sequencerQueue, orderInQueue)
	for i := range orderOutQueues {
		q := make(chan *order, orderOutQueueSize)
		go run(orderInQueue, q, opts.strict)
		orderOutQueues[i] = q
	}
	go resolve(orderOutQueues, outQueue)

	return sequencerQueue, outQueue
}

func sequence(in <-chan *wgram.Expander, orderInQueue chan<- *order) {
	seq := 0
	for e := range in {
		orderInQueue <- &order{
			expander: e,
			seq:      seq,
		}
		seq++
	}
	close(orderInQueue)
}

func run(orderInQueue <-chan *order, orderOutQueue chan<- *order, strict bool) {
	for o := range orderInQueue {
		o.result, o.err = o.expander.Run()
		if o.err == nil && strict && o.result.Truncated {
			o.err = errors.Wrapf(errTruncated, "%d non-terminals left", o.result.Form.NonTerminals())
		}
		orderOutQueue <- o
	}
	close(orderOutQueue)
}

// resolve puts the orders back in their input sequence.
//
// One order is read per queue: if it is the next in the sequence it is sent over,
// if it is in advance it takes that queue's spot in the buffer, and that queue isn't
// selected on until the spot is freed. Each worker handles its orders in sequence,
// so the next expected order is always at the head of a queue whose spot is free.
func resolve(orderOutQueues []<-chan *order, outQueue chan<- *order) {
	seq := -1

	buffer := make([]*order, len(orderOutQueues))

	// Closed queues are disregarded for selection
	mask := make([]bool, len(orderOutQueues))

	// Empty the buffer as far as possible
	var checkBuffer func()
	checkBuffer = func() {
		for i, buffered := range buffer {
			if buffered != nil && buffered.seq == seq+1 {
				outQueue <- buffered
				seq++

				buffer[i] = nil
				checkBuffer()
				return
			}
		}
	}

	selectCases := make([]reflect.SelectCase, len(orderOutQueues))
	for i, ooq := range orderOutQueues {
		selectCases[i] = reflect.SelectCase{
			Dir:  reflect.SelectRecv,
			Chan: reflect.ValueOf(ooq),
		}
	}

	// Selected cases, and the queue index each one maps to
	subSelectCases := make([]reflect.SelectCase, 0, len(orderOutQueues))
	subSelectCaseToOrderQueueIndex := make([]int, 0, len(orderOutQueues))

	for {
		allMasked := true
		for _, masked := range mask {
			if !masked {
				allMasked = false
				break
			}
		}
		if allMasked {
			checkBuffer()
			close(outQueue)
			return
		}

		for i, sc := range selectCases {
			if buffer[i] == nil && !mask[i] {
				subSelectCases = append(subSelectCases, sc)
				subSelectCaseToOrderQueueIndex = append(subSelectCaseToOrderQueueIndex, i)
			}
		}

		// Every unmasked queue has its spot taken, so the sequence has a hole
		if len(subSelectCases) == 0 {
			panic("no cases to select, are the sequence numbers really incremental ?")
		}

		chosen, recv, ok := reflect.Select(subSelectCases)
		queueIndex := subSelectCaseToOrderQueueIndex[chosen]
		if !ok {
			mask[queueIndex] = true
			checkBuffer()
		} else {
			o := recv.Interface().(*order)
			if o.seq == seq+1 {
				outQueue <- o
				seq++

				checkBuffer()
			} else {
				buffer[queueIndex] = o
			}
		}

		subSelectCases = subSelectCases[:0]
		subSelectCaseToOrderQueueIndex = subSelectCaseToOrderQueueIndex[:0]
	}
}
