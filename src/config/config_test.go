package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"wraplife/src/config"
	"wraplife/src/simulation"
	"wraplife/src/universe"
)

var _ = Describe("Config", func() {
	Describe("Default", func() {
		It("matches the engine defaults", func() {
			cfg := config.Default()
			Expect(cfg.Width).To(BeEquivalentTo(64))
			Expect(cfg.Height).To(BeEquivalentTo(64))
			Expect(cfg.Storage).To(Equal("dense"))
			Expect(cfg.Seeding).To(Equal("random"))
			Expect(cfg.Interval).To(Equal(simulation.DefSimulationInterval))
			Expect(cfg.Stamps).To(BeNil())
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("Parse", func() {
		It("overrides the defaults with the document values", func() {
			cfg, err := config.Parse([]byte(`
width: 32
height: 16
storage: packed
seeding: dead
seed: 7
interval: 150ms
max_steps: 20
stamps:
  - pattern: glider
    x: 1
    y: 2
  - pattern: Acorn
    x: 10
    y: 4
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Width).To(BeEquivalentTo(32))
			Expect(cfg.Height).To(BeEquivalentTo(16))
			Expect(cfg.Storage).To(Equal("packed"))
			Expect(cfg.Seed).To(BeEquivalentTo(7))
			Expect(cfg.Interval).To(Equal(150 * time.Millisecond))
			Expect(cfg.MaxSteps).To(Equal(20))
			Expect(cfg.MaxSkippedTicks).To(Equal(simulation.DefMaxSkippedTicks))
			Expect(cfg.Stamps).To(HaveLen(2))
			Expect(cfg.Stamps[1]).To(Equal(config.StampConfig{Pattern: "Acorn", X: 10, Y: 4}))
		})

		It("keeps the defaults for the empty document", func() {
			cfg, err := config.Parse([]byte(""))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Default()))
		})

		It("rejects the malformed yaml", func() {
			_, err := config.Parse([]byte("width: [1"))
			Expect(err).To(HaveOccurred())
		})

		DescribeTable("rejects unusable values",
			func(doc string) {
				_, err := config.Parse([]byte(doc))
				Expect(err).To(MatchError(config.ErrInvalidConfig))
			},
			Entry("zero width", "width: 0"),
			Entry("zero height", "height: 0"),
			Entry("storage", "storage: sparse"),
			Entry("seeding", "seeding: half"),
			Entry("negative steps", "max_steps: -1"),
			Entry("unknown stamp", "stamps: [{pattern: gun, x: 1, y: 1}]"),
			Entry("stamp column outside", "width: 10\nstamps: [{pattern: glider, x: 10, y: 0}]"),
			Entry("stamp row outside", "stamps: [{pattern: glider, x: 0, y: 4294967295}]"),
		)
	})

	Describe("Load and Save", func() {
		It("round trips through the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "life.yaml")
			cfg := config.Default()
			cfg.Storage = "packed"
			cfg.Interval = 40 * time.Millisecond
			cfg.Stamps = config.StampList{{Pattern: "square", X: 3, Y: 5}}
			Expect(config.Save(path, cfg)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("keeps the empty stamps list through the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "empty.yaml")
			cfg := config.Default()
			cfg.Stamps = config.StampList{}
			Expect(config.Save(path, cfg)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("stamps: []"))

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Stamps).NotTo(BeNil())
			Expect(loaded.Stamps).To(BeEmpty())
			Expect(loaded.UniverseOptions().Stamps).To(Equal([]universe.Stamp{}))
		})

		It("omits the default stamps from the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "default.yaml")
			Expect(config.Save(path, config.Default())).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).NotTo(ContainSubstring("stamps"))

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Stamps).To(BeNil())
		})

		It("reports the missing file", func() {
			_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("names the file in the validation error", func() {
			path := filepath.Join(GinkgoT().TempDir(), "bad.yaml")
			Expect(os.WriteFile(path, []byte("storage: sparse\n"), 0644)).To(Succeed())
			_, err := config.Load(path)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(err.Error()).To(ContainSubstring("bad.yaml"))
		})
	})

	Describe("conversion", func() {
		It("builds the universe options", func() {
			cfg := config.Default()
			cfg.Width, cfg.Height = 20, 10
			cfg.Seeding = "dead"
			o := cfg.UniverseOptions()
			Expect(o.Stamps).To(BeNil())

			cfg.Stamps = config.StampList{{Pattern: "glider", X: 0, Y: 0}}
			o = cfg.UniverseOptions()
			Expect(o.Stamps).To(Equal([]universe.Stamp{{Pattern: "glider", X: 0, Y: 0}}))

			u, err := universe.NewWithOptions(o)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Width()).To(BeEquivalentTo(20))
			Expect(u.Height()).To(BeEquivalentTo(10))
			Expect(u.Population()).To(Equal(5))
		})

		It("keeps the empty stamps list empty", func() {
			cfg := config.Default()
			cfg.Seeding = "dead"
			cfg.Stamps = config.StampList{}
			u, err := universe.NewWithOptions(cfg.UniverseOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Population()).To(BeZero())
		})

		It("builds the runner options", func() {
			cfg := config.Default()
			cfg.MaxSteps = 3
			Expect(*cfg.RunnerOptions()).To(Equal(simulation.Options{
				Interval:        simulation.DefSimulationInterval,
				MaxSteps:        3,
				MaxSkippedTicks: simulation.DefMaxSkippedTicks,
				HistorySize:     simulation.DefHistorySize,
			}))
		})
	})
})
