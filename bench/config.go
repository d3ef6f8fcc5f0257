package bench

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/sim"
	"github.com/sarchlab/vbench/stimulus"
)

// A ToneConfig describes one sinusoidal component of the stimulus.
type ToneConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Freq      float64 `yaml:"freq"`
}

// A Config describes a complete bench in a YAML file.
type Config struct {
	Model  string `yaml:"model"`
	Cycles uint64 `yaml:"cycles"`

	ClockHz    float64 `yaml:"clock_hz"`
	SampleRate float64 `yaml:"sample_rate"`
	Scale      float64 `yaml:"scale"`

	Stimulus  []ToneConfig `yaml:"stimulus"`
	DataPort  string       `yaml:"data_port"`
	ValidPort string       `yaml:"valid_port"`
	Probes    []string     `yaml:"probes"`

	Output string `yaml:"output"`
	CSV    string `yaml:"csv"`

	Monitor     bool `yaml:"monitor"`
	MonitorPort int  `yaml:"monitor_port"`
	Browser     bool `yaml:"browser"`

	LogEvents   bool `yaml:"log_events"`
	ParallelIDs bool `yaml:"parallel_ids"`

	// stimulusExplicit and probesExplicit record that the port names came
	// from the loaded file rather than from the defaults. Default port names
	// that the model does not have are skipped; named ones must exist.
	stimulusExplicit bool
	probesExplicit   bool
}

// DefaultConfig returns the configuration of the default run: the FIR model
// driven with the two-tone demo signal for 10 cycles at 500 Hz.
func DefaultConfig() Config {
	return Config{
		Model:      "fir",
		Cycles:     10,
		ClockHz:    500,
		SampleRate: 500,
		Scale:      16384,
		Stimulus: []ToneConfig{
			{Amplitude: 1.0, Freq: 50},
			{Amplitude: 0.5, Freq: 120},
		},
		DataPort:  "in_sample",
		ValidPort: "in_valid",
		Probes:    []string{"out_valid", "out_sample"},
	}
}

// LoadConfig reads a bench configuration from a YAML file. Fields that the
// file does not set keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return c, fmt.Errorf("cannot parse config %s: %w", path, err)
	}

	var keys map[string]any
	_ = yaml.Unmarshal(data, &keys)
	for _, k := range []string{"stimulus", "data_port", "valid_port"} {
		if _, ok := keys[k]; ok {
			c.stimulusExplicit = true
		}
	}
	if _, ok := keys["probes"]; ok {
		c.probesExplicit = true
	}

	return c, nil
}

// ApplyEnv overrides the configuration with environment variables, loading a
// .env file first if one is present.
func (c *Config) ApplyEnv() error {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("VBENCH_CYCLES"); v != "" {
		cycles, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid VBENCH_CYCLES: %w", err)
		}
		c.Cycles = cycles
	}

	if v := os.Getenv("VBENCH_OUTPUT"); v != "" {
		c.Output = v
	}

	if v := os.Getenv("VBENCH_MONITOR_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid VBENCH_MONITOR_PORT: %w", err)
		}
		c.Monitor = true
		c.MonitorPort = port
	}

	return nil
}

// Bench instantiates the configured model and builds a bench around it.
func (c Config) Bench() (*Bench, error) {
	m, err := model.New(c.Model, "Top")
	if err != nil {
		return nil, err
	}

	b := MakeBuilder().
		WithModel(m).
		WithCycles(c.Cycles).
		WithFreq(sim.Freq(c.ClockHz) * sim.Hz)

	if c.LogEvents {
		b = b.WithEventLogging()
	}

	if len(c.Stimulus) > 0 && c.DataPort != "" {
		if m.Port(c.DataPort) == nil {
			if c.stimulusExplicit {
				return nil, fmt.Errorf(
					"model %s has no port %s", c.Model, c.DataPort)
			}
		} else {
			tones := make([]stimulus.Tone, 0, len(c.Stimulus))
			for _, t := range c.Stimulus {
				tones = append(tones,
					stimulus.Tone{Amplitude: t.Amplitude, Freq: t.Freq})
			}

			validPort := c.ValidPort
			if validPort != "" && m.Port(validPort) == nil {
				if c.stimulusExplicit {
					return nil, fmt.Errorf(
						"model %s has no port %s", c.Model, validPort)
				}
				validPort = ""
			}

			b = b.WithStimulus(
				stimulus.NewSine(c.SampleRate, tones...),
				c.DataPort, validPort, c.Scale)
		}
	}

	for _, p := range c.Probes {
		if m.Port(p) == nil {
			if c.probesExplicit {
				return nil, fmt.Errorf("model %s has no port %s", c.Model, p)
			}
			continue
		}
		b = b.WithProbes(p)
	}

	if c.Output != "" {
		b = b.WithOutputFileName(c.Output)
	}
	if c.CSV != "" {
		b = b.WithCSVTrace(c.CSV)
	}

	if c.Monitor {
		b = b.WithMonitoring()
		if c.MonitorPort != 0 {
			b = b.WithMonitorPort(c.MonitorPort)
		}
		if c.Browser {
			b = b.WithBrowser()
		}
	}

	return b.Build(), nil
}
