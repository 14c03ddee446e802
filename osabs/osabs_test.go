package osabs_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sergiohidalgo818/rtxi/osabs"
)

var _ = Describe("Initiate and Shutdown", func() {
	It("either succeeds or reports missing privilege, never panics", func() {
		err := osabs.Initiate()
		defer osabs.Shutdown()

		if err != nil {
			Expect(err).To(MatchError(osabs.ErrNoPrivilege))
			Expect(osabs.IsRealtime()).To(BeFalse())
		} else {
			Expect(osabs.IsRealtime()).To(BeTrue())
		}
	})

	It("is idempotent", func() {
		Expect(func() {
			_ = osabs.Initiate()
			_ = osabs.Initiate()
			osabs.Shutdown()
			osabs.Shutdown()
		}).NotTo(Panic())
	})
})

var _ = Describe("SleepTimestep", func() {
	It("blocks for approximately the requested period", func() {
		start := osabs.GetTime()
		osabs.SleepTimestep(10 * time.Millisecond)
		elapsed := osabs.GetTime().Sub(start)

		Expect(elapsed).To(BeNumerically(">=", 10*time.Millisecond))
	})
})

var _ = Describe("Task", func() {
	It("schedules against its own start time instead of compounding drift", func() {
		period := 5 * time.Millisecond
		task := osabs.CreateTask(period)

		start := osabs.GetTime()

		for i := 0; i < 5; i++ {
			task.SleepTimestep()
		}

		elapsed := osabs.GetTime().Sub(start)

		// Five ticks of 5ms measured from one shared start should land close
		// to 25ms, not 25ms plus five independent scheduling overheads.
		Expect(elapsed).To(BeNumerically(">=", 5*period))
		Expect(elapsed).To(BeNumerically("<", 5*period+20*time.Millisecond))
	})

	It("does not oversleep when a tick is already overdue", func() {
		task := osabs.CreateTask(time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		start := osabs.GetTime()
		task.SleepTimestep()
		elapsed := osabs.GetTime().Sub(start)

		Expect(elapsed).To(BeNumerically("<", time.Millisecond))
	})

	It("reports the new period after SetPeriod", func() {
		task := osabs.CreateTask(time.Millisecond)
		Expect(task.Period()).To(Equal(time.Millisecond))

		task.SetPeriod(2 * time.Millisecond)
		Expect(task.Period()).To(Equal(2 * time.Millisecond))
	})
})
