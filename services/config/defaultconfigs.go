package config

// Key: device ID. Val: raw JSON overlaid on Defaults.

const cfgPicoRichDev = `{
  "device": "pico_rich_dev",
  "buzzer": {
    "pin": 16,
    "volume": 12
  },
  "pixy": {
    "link": "spi",
    "spi_hz": 2000000
  }
}`

const cfgPicoBBProto1 = `{
  "device": "pico_bb_proto_1",
  "buzzer": {
    "pin": 22,
    "boot_melody": "!L16 V10 cdegreg4"
  },
  "pixy": {
    "link": "uart",
    "uart": "uart1",
    "baud": 19200,
    "tx": 4,
    "rx": 5
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico_rich_dev":   []byte(cfgPicoRichDev),
	"pico_bb_proto_1": []byte(cfgPicoBBProto1),
}
