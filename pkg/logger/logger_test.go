package logger_test

import (
	"context"
	"log/slog"
	"time"

	"github.com/kralicky/linelog/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("New", func() {
	var buf *gbytes.Buffer
	var vars map[string]string
	var cfg logger.Config
	BeforeEach(func() {
		buf = gbytes.NewBuffer()
		vars = map[string]string{}
		cfg = logger.Config{
			Args:   []string{"/usr/local/bin/myapp", "serve"},
			Output: buf,
			Lookup: env(vars),
		}
	})

	It("should render records with the resolved identity", func() {
		vars["LOGLEVEL"] = "info"
		cfg.Color = logger.ColorAlways
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(lg.Identity()).To(Equal(logger.Identity("myapp")))

		lg.Info("started")
		Expect(stripColor(string(buf.Contents()))).To(MatchRegexp(`^\[\d+\] myapp: INFO: started\n$`))
	})

	It("should default to the error level when LOGLEVEL is unset", func() {
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(lg.Level()).To(Equal(logger.DefaultLevel))
		lg.Warn("hidden")
		lg.Error("shown")
		Expect(string(buf.Contents())).To(MatchRegexp(`^\[\d+\] myapp: ERROR: shown\n$`))
	})

	It("should read the level filter from a custom key", func() {
		vars["APP_LOG"] = "debug"
		cfg.LevelKey = "APP_LOG"
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(lg.Level()).To(Equal(logger.LevelDebug))
	})

	It("should prefer an explicit level over the environment", func() {
		vars["LOGLEVEL"] = "error"
		level := logger.LevelTrace
		cfg.Level = &level
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		lg.Trace("fine grained")
		Expect(buf).To(gbytes.Say(`myapp: TRACE: fine grained\n`))
	})

	It("should drop everything when the filter is off", func() {
		vars["LOGLEVEL"] = "off"
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		lg.Error("hidden")
		lg.Log(context.Background(), logger.LevelOff, "hidden")
		lg.Log(context.Background(), logger.LevelOff+100, "hidden")
		Expect(buf.Contents()).To(BeEmpty())
	})

	It("should allow changing the level after construction", func() {
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		lg.Info("hidden")
		lg.SetLevel(logger.LevelInfo)
		lg.Info("shown")
		Expect(string(buf.Contents())).To(MatchRegexp(`^\[\d+\] myapp: INFO: shown\n$`))
	})

	It("should use the calendar clock when configured", func() {
		vars["LOGTZ"] = "3"
		vars["LOGLEVEL"] = "info"
		cfg.Clock = logger.ClockCalendar
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		r := slog.NewRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), slog.LevelInfo, "started", 0)
		Expect(lg.LineHandler().Handle(context.Background(), r)).To(Succeed())
		Expect(string(buf.Contents())).To(Equal("[2024-01-01 03:00:00] myapp: INFO: started\n"))
	})

	It("should capture the monotonic reference instant once", func() {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		calls := 0
		cfg.Now = func() time.Time {
			calls++
			return start
		}
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(1))
		Expect(lg.Clock().Render(start.Add(61 * time.Second))).To(Equal("61"))
	})

	Context("colors", func() {
		It("should not color a non-terminal sink in auto mode", func() {
			vars["LOGLEVEL"] = "info"
			lg, err := logger.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			lg.Info("plain")
			Expect(string(buf.Contents())).NotTo(ContainSubstring("\x1b["))
		})
		It("should let LOGSTYLE override the configured mode", func() {
			vars["LOGLEVEL"] = "info"
			vars["LOGSTYLE"] = "always"
			cfg.Color = logger.ColorNever
			lg, err := logger.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			lg.Info("colored")
			Expect(string(buf.Contents())).To(ContainSubstring("\x1b["))
		})
		It("should reject an unknown style", func() {
			vars["LOGSTYLE"] = "rainbow"
			lg, err := logger.New(cfg)
			Expect(err).To(MatchError(logger.ErrInvalidStyle))
			Expect(lg).To(BeNil())
		})
	})

	DescribeTable("initialization failures",
		func(mutate func(*logger.Config, map[string]string), expected error) {
			mutate(&cfg, vars)
			lg, err := logger.New(cfg)
			Expect(err).To(MatchError(expected))
			Expect(lg).To(BeNil())
		},
		Entry("no arguments", func(c *logger.Config, _ map[string]string) {
			c.Args = []string{}
		}, logger.ErrMissingArguments),
		Entry("no final path segment", func(c *logger.Config, _ map[string]string) {
			c.Args = []string{"/usr/bin/"}
		}, logger.ErrInvalidPath),
		Entry("non-text name", func(c *logger.Config, _ map[string]string) {
			c.Args = []string{"/usr/bin/\xfe"}
		}, logger.ErrNonTextName),
		Entry("calendar without offset", func(c *logger.Config, _ map[string]string) {
			c.Clock = logger.ClockCalendar
		}, logger.ErrMissingTimezoneConfig),
		Entry("calendar with bad offset", func(c *logger.Config, v map[string]string) {
			c.Clock = logger.ClockCalendar
			v["LOGTZ"] = "abc"
		}, logger.ErrInvalidTimezoneValue),
		Entry("unknown clock kind", func(c *logger.Config, _ map[string]string) {
			c.Clock = logger.ClockKind(42)
		}, logger.ErrInvalidClock),
		Entry("bad level filter", func(_ *logger.Config, v map[string]string) {
			v["LOGLEVEL"] = "loud"
		}, logger.ErrInvalidLevel),
	)

	It("should round-trip the logger through a context", func() {
		lg, err := logger.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		ctx := logger.ContextWithLogger(context.Background(), lg)
		got, ok := logger.FromContext(ctx)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(lg))

		_, ok = logger.FromContext(context.Background())
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Init", Ordered, func() {
	var buf *gbytes.Buffer
	var previous *slog.Logger
	BeforeAll(func() {
		buf = gbytes.NewBuffer()
		previous = slog.Default()
		DeferCleanup(func() {
			slog.SetDefault(previous)
		})
	})

	It("should leave the default logger untouched on failure", func() {
		lg, err := logger.Init(logger.Config{
			Args:   []string{},
			Output: buf,
			Lookup: env(nil),
		})
		Expect(err).To(MatchError(logger.ErrMissingArguments))
		Expect(lg).To(BeNil())
		Expect(slog.Default()).To(BeIdenticalTo(previous))
	})

	var registered *logger.Logger
	It("should register the logger as the slog default", func() {
		var err error
		registered, err = logger.Init(logger.Config{
			Args:   []string{"myapp"},
			Output: buf,
			Lookup: env(map[string]string{"LOGLEVEL": "info"}),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(slog.Default()).To(BeIdenticalTo(registered.Logger))

		slog.Info("started")
		Expect(buf).To(gbytes.Say(`^\[\d+\] myapp: INFO: started\n`))
	})

	It("should refuse a second registration", func() {
		lg, err := logger.Init(logger.Config{
			Args:   []string{"other"},
			Output: buf,
			Lookup: env(nil),
		})
		Expect(err).To(MatchError(logger.ErrAlreadyInitialized))
		Expect(logger.IsRegistrationError(err)).To(BeTrue())
		Expect(lg).To(BeNil())
		Expect(slog.Default()).To(BeIdenticalTo(registered.Logger))
	})
})
