package settings

var Version = "0.1"

// Frame files
var InFilename = ""
var OutFilename = ""

// Test tone written in the configured audio format
var OutputWav = ""
var ToneFrequency = 440.0
var ToneSeconds = 2.0

// Master clock in MHz: 12.288, 18.432, 11.2896, 16.9344 or 12 (USB)
var ClockMHz = "12.288"

// Take the rate pair and word length from this WAV file
var MatchWav = ""

// ADC/DAC rate pair, e.g. "48k/48k"
var RatePair = "48k/48k"

// Digital audio interface
var Format = "i2s"
var WordLength = 24
var Master = false

// Volumes in dB
var HeadphoneVolume = 0
var LineInVolume = 0.0

// Use the microphone instead of the line input
var Microphone = false
var Bypass = false

// Linux I2C bus number and slave address (0x1a with CSB low, 0x1b high)
var Bus = 1
var Address = 0x1a

// Only print the frames
var DryRun = false

// Wait for a key before each frame is sent
var Step = false

// Print a decoded listing of the frames
var PrintCode = true

// Open the register viewer
var Viewer = false

// Print extra debug info
var PrintDebug = false

// Max number of frames printed in a listing
var MaxNumberOfFrames = 64
