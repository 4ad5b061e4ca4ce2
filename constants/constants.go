package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetFoundryAPIKey() string {
	return os.Getenv("FOUNDRY_API_KEY")
}

func GetFoundryEndpoint() string {
	return os.Getenv("FOUNDRY_ENDPOINT")
}

func GetModelDeployment() string {
	return os.Getenv("MODEL_DEPLOYMENT_NAME")
}

func GetModelName() string {
	name := os.Getenv("MODEL_NAME")
	if name != "" {
		return name
	}
	return GetModelDeployment()
}

func GetFoundryAPIVersion() string {
	version := os.Getenv("FOUNDRY_API_VERSION")
	if version != "" {
		return version
	}
	// services.ai.azure.com project endpoints need the preview version
	return "2024-05-01-preview"
}

func GetSpeechKey() string {
	return os.Getenv("SPEECH_KEY")
}

func GetSpeechRegion() string {
	return os.Getenv("AZURE_SPEECH_REGION")
}

// GetRenderBucket returns the S3 bucket rendered artifacts get uploaded to.
// Empty means uploading is disabled.
func GetRenderBucket() string {
	return os.Getenv("RENDER_BUCKET")
}

func GetAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// Playable pitch range: C3..C5. Resolved notes are octave-folded into it.
const PitchMin = 48
const PitchMax = 72

const TempoMin = 40
const TempoMax = 200

const VelocityMax = 127

const TicksPerBeat = 480

const DefaultSampleRate = 44100

// Synthesis envelope and mix constants.
const (
	AttackSeconds  = 0.02
	DecaySeconds   = 0.04
	ReleaseSeconds = 0.06
	SustainLevel   = 0.6

	OutputGain = 0.35

	// trailing silence so the last release isn't clipped
	TailSeconds = 0.3

	// peak normalization target, leaves headroom under the int16 limit
	PeakTarget = 32000.0
)
