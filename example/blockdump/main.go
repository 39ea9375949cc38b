package main

import (
	"io"
	"log"
	"os"

	"github.com/mediakit/webm/format/webm/webmio"
)

func main() {
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	doc := webmio.InitDocument(f)
	err = doc.ParseAll(func(el webmio.Element) {
		switch el.ID {
		case webmio.ElementSimpleBlock.ID:
			sb, err := webmio.DecodeSimpleBlock(el)
			if err != nil {
				log.Println(err)
				return
			}
			log.Println("SimpleBlock", sb.TrackNumber, sb.Timecode, "key", sb.Keyframe, "discardable", sb.Discardable, "lacing", sb.Lacing, len(sb.Payload))
		case webmio.ElementBlock.ID:
			b, err := webmio.DecodeBlock(el)
			if err != nil {
				log.Println(err)
				return
			}
			log.Println("Block", b.TrackNumber, b.Timecode, "invisible", b.Invisible, "lacing", b.Lacing, len(b.Payload))
		case webmio.ElementTimecode.ID:
			tc, _ := webmio.UintValue(el)
			log.Println("Cluster", tc)
		}
	})
	if err != nil && err != io.EOF {
		log.Println(err)
	}
}
