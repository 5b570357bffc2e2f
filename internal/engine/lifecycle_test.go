package engine_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/engine"
)

var _ = Describe("Controller lifecycle", func() {
	var c *engine.Controller

	newController := func(base time.Duration) *engine.Controller {
		return engine.New(algo.NewRegistry(), engine.Config{BaseDelay: base, Speed: 1, Seed: 42})
	}

	AfterEach(func() {
		c.Reset()
		c.Wait()
	})

	Context("with a slow clock", func() {
		BeforeEach(func() {
			c = newController(time.Hour)
			Expect(c.Start("quick-sort", "9, 4, 7, 1", 1)).To(Succeed())
		})

		It("is running after start", func() {
			Expect(c.State()).To(Equal(anim.Running))
			Expect(c.RunID()).NotTo(BeEmpty())
		})

		It("publishes the first frame and waits", func() {
			Eventually(func() int {
				f, _ := c.LastFrame()
				return f.Seq
			}).Should(Equal(1))
			Consistently(func() int {
				f, _ := c.LastFrame()
				return f.Seq
			}, 50*time.Millisecond).Should(Equal(1))
		})

		It("restores the previous state after pause and resume", func() {
			c.Pause()
			Expect(c.State()).To(Equal(anim.Paused))
			c.Resume()
			Expect(c.State()).To(Equal(anim.Running))
		})

		It("ignores start while active", func() {
			id := c.RunID()
			Expect(c.Start("bubble-sort", "1,2", 1)).To(Succeed())
			Expect(c.RunID()).To(Equal(id))
			Expect(c.Algorithm()).To(Equal("quick-sort"))
		})

		It("returns to idle with zero counters on reset", func() {
			Eventually(c.Stats).ShouldNot(BeZero())
			c.Reset()
			Expect(c.State()).To(Equal(anim.Idle))
			Expect(c.Stats()).To(BeZero())
		})

		It("stops at cancel and keeps counters", func() {
			Eventually(c.Stats).ShouldNot(BeZero())
			c.Cancel()
			c.Wait()
			Expect(c.State()).To(Equal(anim.Cancelled))
			Expect(c.Stats().Comparisons).To(BeNumerically(">", 0))
		})
	})

	Context("with an instant clock", func() {
		BeforeEach(func() {
			c = newController(0)
		})

		It("completes every registered algorithm", func() {
			reg := algo.NewRegistry()
			for _, name := range reg.List() {
				Expect(c.Start(name, "6, 2, 9, 4", 1)).To(Succeed())
				c.Wait()
				Expect(c.State()).To(Equal(anim.Completed), name)
				_, ok := c.LastFrame()
				Expect(ok).To(BeTrue(), name)
			}
		})

		It("sorts the example input", func() {
			Expect(c.Start("bubble-sort", "5,3,8,1", 1)).To(Succeed())
			c.Wait()
			f, _ := c.LastFrame()
			Expect(f.Values).To(Equal([]int{1, 3, 5, 8}))
			Expect(c.Stats()).To(Equal(anim.Stats{Comparisons: 6, Operations: 4}))
		})

		It("stays idle on invalid input", func() {
			err := c.Start("bubble-sort", "none of these", 1)
			Expect(err).To(MatchError(anim.ErrEmptyInput))
			Expect(c.State()).To(Equal(anim.Idle))
		})
	})
})
