package fifo_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sergiohidalgo818/rtxi/fifo"
)

var _ = Describe("Queue", func() {
	It("rounds capacity up to a power of two", func() {
		q := fifo.New[int](3)
		Expect(q.Cap()).To(Equal(4))
	})

	It("pops in FIFO order", func() {
		q := fifo.New[int](4)
		Expect(q.Push(1)).To(Succeed())
		Expect(q.Push(2)).To(Succeed())
		Expect(q.Push(3)).To(Succeed())

		v, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))

		v, ok = q.Pop()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(2))
	})

	It("reports empty with ok=false instead of blocking", func() {
		q := fifo.New[int](4)
		_, ok := q.Pop()
		Expect(ok).To(BeFalse())
	})

	It("returns ErrFull instead of blocking or overwriting", func() {
		q := fifo.New[int](2)
		Expect(q.Push(1)).To(Succeed())
		Expect(q.Push(2)).To(Succeed())
		Expect(q.Push(3)).To(MatchError(fifo.ErrFull))

		v, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))
	})

	It("tracks length and capacity", func() {
		q := fifo.New[int](8)
		Expect(q.Len()).To(Equal(0))
		Expect(q.Push(1)).To(Succeed())
		Expect(q.Len()).To(Equal(1))
		q.Pop()
		Expect(q.Len()).To(Equal(0))
	})

	It("delivers every element exactly once under a real producer/consumer pair", func() {
		const n = 20000

		q := fifo.New[int](64)
		received := make([]int, 0, n)

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()

			for i := 0; i < n; i++ {
				for q.Push(i) != nil {
					time.Sleep(time.Microsecond)
				}
			}
		}()

		go func() {
			defer wg.Done()

			for len(received) < n {
				if v, ok := q.Pop(); ok {
					received = append(received, v)
				}
			}
		}()

		wg.Wait()

		Expect(received).To(HaveLen(n))
		for i, v := range received {
			Expect(v).To(Equal(i))
		}
	})
})
