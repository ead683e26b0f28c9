package audit

import (
	"log"
	"sync"
)

// Dispatcher grava auditoria fora do caminho da requisição. Falha de
// auditoria nunca derruba nem desfaz a operação principal: o erro fica
// no log do processo e a resposta segue normal.
type Dispatcher struct {
	sink    Sink
	queue   chan Event
	pending sync.WaitGroup

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			log.Println("audit error:", err)
		}
		d.pending.Done()
	}
	close(d.done)
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.pending.Add(1)
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.pending.Done()
		log.Println("audit queue full, dropping event")
	}
}

// Flush espera os eventos já despachados serem gravados.
func (d *Dispatcher) Flush() {
	d.pending.Wait()
}

// Close drena a fila e encerra o worker.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.pending.Wait()
		close(d.queue)
		<-d.done
	})
}
