package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = beep.SampleRate(48000)

// maxSoundLength caps rendering of any effect.
const maxSoundLength = 2 * time.Second

// Sound names one synthesised effect.
type Sound int

const (
	SoundPlace Sound = iota
	SoundInvalid
	SoundUndo
	SoundDetonate
	soundCount
)

// waveType selects an oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSaw
	waveNoise
)

// oscillator is a fixed-length mono tone duplicated on both channels.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     waveType
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave waveType) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: sampleRate.N(d),
		wave:   wave,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + int64(d))), // #nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSaw:
			v = 2 * (o.phase - 0.5)
		case waveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  sampleRate.N(attack),
		release: sampleRate.N(release),
		total:   sampleRate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales a stream linearly; zero mutes it.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave waveType, attack, release time.Duration, vol float64) beep.Streamer {
	return gain(newEnvelope(newOscillator(freq, d, wave), d, attack, release), vol)
}

// synth builds the streamer for a sound.
func synth(s Sound) beep.Streamer {
	switch s {
	case SoundPlace:
		return tone(660, 60*time.Millisecond, waveSine, 5*time.Millisecond, 50*time.Millisecond, 0.4)
	case SoundInvalid:
		return tone(110, 120*time.Millisecond, waveSaw, 5*time.Millisecond, 60*time.Millisecond, 0.25)
	case SoundUndo:
		return beep.Seq(
			tone(520, 50*time.Millisecond, waveSine, 5*time.Millisecond, 20*time.Millisecond, 0.35),
			tone(390, 70*time.Millisecond, waveSine, 5*time.Millisecond, 50*time.Millisecond, 0.35),
		)
	case SoundDetonate:
		return beep.Mix(
			tone(0, 600*time.Millisecond, waveNoise, 5*time.Millisecond, 500*time.Millisecond, 0.5),
			tone(55, 500*time.Millisecond, waveSine, 5*time.Millisecond, 400*time.Millisecond, 0.6),
		)
	}
	return beep.Silence(0)
}

// renderPCM drains s into signed 16-bit little-endian stereo, the format
// ebiten's audio players take.
func renderPCM(s beep.Streamer) []byte {
	limit := sampleRate.N(maxSoundLength)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*sampleRate.N(200*time.Millisecond))
	written := 0
	for written < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n && written < limit; i++ {
			for ch := 0; ch < 2; ch++ {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][ch])))
			}
			written++
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// SoundBank holds pre-rendered effects and the players currently sounding.
// A nil *SoundBank is valid and silent.
type SoundBank struct {
	ctx     *audio.Context
	pcm     [soundCount][]byte
	playing []player
}

// player is the part of *audio.Player the bank manages.
type player interface {
	IsPlaying() bool
	Close() error
}

// prunePlayers closes finished players and returns the ones still sounding.
func prunePlayers(ps []player) []player {
	live := ps[:0]
	for _, p := range ps {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(live); i < len(ps); i++ {
		ps[i] = nil
	}
	return live
}

// NewSoundBank renders every effect and attaches to the process audio
// context, creating it if needed.
func NewSoundBank() (sb *SoundBank, err error) {
	defer func() {
		// audio.NewContext panics when a context with another rate exists.
		if r := recover(); r != nil {
			sb, err = nil, fmt.Errorf("init audio: %v", r)
		}
	}()
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(sampleRate))
	}
	sb = &SoundBank{ctx: ctx}
	for s := Sound(0); s < soundCount; s++ {
		sb.pcm[s] = renderPCM(synth(s))
	}
	return sb, nil
}

// Play starts a sound. Finished players are closed on the next call.
func (sb *SoundBank) Play(s Sound) {
	if sb == nil || s < 0 || s >= soundCount {
		return
	}
	sb.playing = prunePlayers(sb.playing)

	p := sb.ctx.NewPlayerFromBytes(sb.pcm[s])
	p.Play()
	sb.playing = append(sb.playing, p)
}
