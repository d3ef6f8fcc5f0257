package bench

import (
	"log"
	"os"

	"github.com/rs/xid"

	"github.com/sarchlab/vbench/datarecording"
	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/monitoring"
	"github.com/sarchlab/vbench/sim"
	"github.com/sarchlab/vbench/stimulus"
	"github.com/sarchlab/vbench/trace"
)

type stimulusSpec struct {
	source    stimulus.Source
	dataPort  string
	validPort string
	scale     float64
}

// Builder can be used to build a bench.
type Builder struct {
	model  model.Model
	cycles uint64
	freq   sim.Freq

	stimuli    []stimulusSpec
	probePorts []string

	recorderOn     bool
	outputFileName string
	csvFileName    string

	monitorOn   bool
	monitorPort int
	browserOn   bool

	eventLogOn bool
}

// MakeBuilder creates a new builder with the default configuration: 10
// cycles at 500 Hz, recording on, monitoring off.
func MakeBuilder() Builder {
	return Builder{
		cycles:     10,
		freq:       500 * sim.Hz,
		recorderOn: true,
	}
}

// WithModel sets the model under test.
func (b Builder) WithModel(m model.Model) Builder {
	b.model = m
	return b
}

// WithCycles sets the number of cycles to run.
func (b Builder) WithCycles(cycles uint64) Builder {
	b.cycles = cycles
	return b
}

// WithFreq sets the clock frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithStimulus binds a stimulus source to an input port of the model.
// validPort may be empty if the model has no valid input.
func (b Builder) WithStimulus(
	source stimulus.Source,
	dataPort, validPort string,
	scale float64,
) Builder {
	b.stimuli = append(b.stimuli, stimulusSpec{
		source:    source,
		dataPort:  dataPort,
		validPort: validPort,
		scale:     scale,
	})
	return b
}

// WithProbes selects the ports whose waveforms are recorded after each
// rising edge.
func (b Builder) WithProbes(portNames ...string) Builder {
	b.probePorts = append(b.probePorts, portNames...)
	return b
}

// WithoutDataRecording disables the SQLite recorder.
func (b Builder) WithoutDataRecording() Builder {
	b.recorderOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithCSVTrace also writes the probed waveforms into a CSV file.
func (b Builder) WithCSVTrace(filename string) Builder {
	b.csvFileName = filename
	return b
}

// WithMonitoring enables the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser opens the monitor dashboard in the default browser.
func (b Builder) WithBrowser() Builder {
	b.browserOn = true
	return b
}

// WithEventLogging prints every engine event to stderr as it is triggered.
func (b Builder) WithEventLogging() Builder {
	b.eventLogOn = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.model == nil {
		panic("bench requires a model")
	}

	if b.cycles == 0 {
		panic("cycle count cannot be 0")
	}

	if b.freq <= 0 {
		panic("clock frequency must be positive")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.browserOn {
		panic("browser cannot be opened when monitoring is disabled")
	}

	if !b.recorderOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the bench.
func (b Builder) Build() *Bench {
	b.parametersMustBeValid()

	s := &Bench{
		model: b.model,
	}

	s.engine = sim.NewSerialEngine()
	if b.eventLogOn {
		s.engine.AcceptHook(sim.NewEventLogger(log.New(os.Stderr, "", 0)))
	}
	s.driver = NewClockDriver(
		b.model.Name()+".ClockDriver", s.engine, b.freq, b.model, b.cycles)

	b.buildStimuli(s)
	b.buildRecorder(s)
	b.buildProbes(s)
	b.buildMonitor(s)

	return s
}

func (b Builder) buildStimuli(s *Bench) {
	for _, spec := range b.stimuli {
		data := b.model.Port(spec.dataPort)
		if data == nil {
			panic("model has no port " + spec.dataPort)
		}

		var valid *model.Port
		if spec.validPort != "" {
			valid = b.model.Port(spec.validPort)
			if valid == nil {
				panic("model has no port " + spec.validPort)
			}
		}

		s.driver.AddBinding(
			stimulus.NewBinding(spec.source, data, valid, spec.scale))
	}
}

func (b Builder) buildRecorder(s *Bench) {
	if !b.recorderOn {
		return
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "vbench_run_" + xid.New().String()
	}
	s.dataRecorder = datarecording.New(outputPath)
}

func (b Builder) buildProbes(s *Bench) {
	if len(b.probePorts) == 0 {
		return
	}

	ports := make([]*model.Port, 0, len(b.probePorts))
	for _, name := range b.probePorts {
		p := b.model.Port(name)
		if p == nil {
			panic("model has no port " + name)
		}
		ports = append(ports, p)
	}

	probe := trace.NewProbe(ports...)

	if s.dataRecorder != nil {
		probe.AddWriter(trace.NewDBWriter(s.dataRecorder))
	}

	if b.csvFileName != "" {
		csv := trace.NewCSVWriter(b.csvFileName)
		csv.Init()
		probe.AddWriter(csv)
	}

	s.driver.AcceptHook(probe)
	s.probes = append(s.probes, probe)
}

func (b Builder) buildMonitor(s *Bench) {
	if !b.monitorOn {
		return
	}

	s.monitor = monitoring.NewMonitor()
	if b.monitorPort > 0 {
		s.monitor.WithPortNumber(b.monitorPort)
	}
	if b.browserOn {
		s.monitor.WithBrowser()
	}

	s.monitor.RegisterEngine(s.engine)
	s.monitor.RegisterClock(s.driver)
	s.monitor.RegisterModel(b.model)

	bar := s.monitor.CreateProgressBar("cycles", b.cycles)
	s.driver.AcceptHook(progressHook{bar: bar})

	s.monitor.StartServer()
}
