package pptx

import (
	"fmt"
	"time"

	"github.com/akeil/deckgen"
)

// XML namespaces and relationship types.
const (
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partPresentation = "ppt/presentation.xml"
	partPresRels     = "ppt/_rels/presentation.xml.rels"
	partMaster       = "ppt/slideMasters/slideMaster1.xml"
	partMasterRels   = "ppt/slideMasters/_rels/slideMaster1.xml.rels"
	partLayout       = "ppt/slideLayouts/slideLayout1.xml"
	partLayoutRels   = "ppt/slideLayouts/_rels/slideLayout1.xml.rels"
	partTheme        = "ppt/theme/theme1.xml"
	partPresProps    = "ppt/presProps.xml"
	partViewProps    = "ppt/viewProps.xml"
	partTableStyles  = "ppt/tableStyles.xml"
)

// First slide id in presentation.xml, lower values are reserved.
const firstSlideID = 256

func slidePart(n int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", n)
}

func slideRelsPart(n int) string {
	return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n)
}

// relationship ids in presentation.xml.rels:
// rId1 is the master, slides follow, the fixed parts come last.
func slideRelID(n int) string {
	return fmt.Sprintf("rId%d", n+1)
}

func writeContentTypes(x *xmlWriter, d *deckgen.Deck) {
	x.raw(xmlHeader)
	x.raw(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	x.raw(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	x.raw(`<Default Extension="xml" ContentType="application/xml"/>`)
	override := func(part, ct string) {
		x.printf(`<Override PartName="/%s" ContentType="%s"/>`, part, ct)
	}
	override(partPresentation, ctPresentation)
	override(partMaster, ctSlideMaster)
	override(partLayout, ctSlideLayout)
	for _, s := range d.Slides() {
		override(slidePart(s.Number()), ctSlide)
	}
	override(partTheme, ctTheme)
	override(partPresProps, ctPresProps)
	override(partViewProps, ctViewProps)
	override(partTableStyles, ctTableStyles)
	override(partCore, ctCoreProps)
	override(partApp, ctExtProps)
	x.raw(`</Types>`)
}

func writeRootRels(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<Relationships xmlns="%s">`, nsRel)
	x.printf(`<Relationship Id="rId1" Type="%s" Target="%s"/>`, relOfficeDocument, partPresentation)
	x.printf(`<Relationship Id="rId2" Type="%s" Target="%s"/>`, relCoreProps, partCore)
	x.printf(`<Relationship Id="rId3" Type="%s" Target="%s"/>`, relExtendedProps, partApp)
	x.raw(`</Relationships>`)
}

func writeCoreProps(x *xmlWriter, d *deckgen.Deck) {
	created := d.Created
	if created.IsZero() {
		created = time.Now()
	}
	ts := created.UTC().Format(time.RFC3339)

	x.raw(xmlHeader)
	x.raw(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	x.raw(`<dc:title>`)
	x.text(d.Title)
	x.raw(`</dc:title>`)
	x.raw(`<dc:identifier>`)
	x.text(d.ID)
	x.raw(`</dc:identifier>`)
	x.raw(`<cp:lastModifiedBy>deckgen</cp:lastModifiedBy>`)
	x.printf(`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, ts)
	x.printf(`<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, ts)
	x.raw(`</cp:coreProperties>`)
}

func writeAppProps(x *xmlWriter, d *deckgen.Deck) {
	x.raw(xmlHeader)
	x.raw(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"` +
		` xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	x.raw(`<Application>deckgen</Application>`)
	x.raw(`<PresentationFormat>Custom</PresentationFormat>`)
	x.printf(`<Slides>%d</Slides>`, d.NumSlides())
	x.raw(`</Properties>`)
}

func writePresentation(x *xmlWriter, d *deckgen.Deck) {
	x.raw(xmlHeader)
	x.printf(`<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">`, nsA, nsR, nsP)
	x.raw(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if d.NumSlides() > 0 {
		x.raw(`<p:sldIdLst>`)
		for _, s := range d.Slides() {
			x.printf(`<p:sldId id="%d" r:id="%s"/>`, firstSlideID+s.Index(), slideRelID(s.Number()))
		}
		x.raw(`</p:sldIdLst>`)
	}
	x.printf(`<p:sldSz cx="%d" cy="%d"/>`, d.Width().EMU(), d.Height().EMU())
	x.raw(`<p:notesSz cx="6858000" cy="9144000"/>`)
	x.raw(`<p:defaultTextStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:defaultTextStyle>`)
	x.raw(`</p:presentation>`)
}

func writePresentationRels(x *xmlWriter, d *deckgen.Deck) {
	x.raw(xmlHeader)
	x.printf(`<Relationships xmlns="%s">`, nsRel)
	x.printf(`<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relSlideMaster)
	for _, s := range d.Slides() {
		x.printf(`<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`, slideRelID(s.Number()), relSlide, s.Number())
	}
	n := d.NumSlides() + 2
	x.printf(`<Relationship Id="rId%d" Type="%s" Target="presProps.xml"/>`, n, relPresProps)
	x.printf(`<Relationship Id="rId%d" Type="%s" Target="viewProps.xml"/>`, n+1, relViewProps)
	x.printf(`<Relationship Id="rId%d" Type="%s" Target="theme/theme1.xml"/>`, n+2, relTheme)
	x.printf(`<Relationship Id="rId%d" Type="%s" Target="tableStyles.xml"/>`, n+3, relTableStyles)
	x.raw(`</Relationships>`)
}

func writeSlideRels(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<Relationships xmlns="%s">`, nsRel)
	x.printf(`<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relSlideLayout)
	x.raw(`</Relationships>`)
}

func writeMasterRels(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<Relationships xmlns="%s">`, nsRel)
	x.printf(`<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, relSlideLayout)
	x.printf(`<Relationship Id="rId2" Type="%s" Target="../theme/theme1.xml"/>`, relTheme)
	x.raw(`</Relationships>`)
}

func writeLayoutRels(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<Relationships xmlns="%s">`, nsRel)
	x.printf(`<Relationship Id="rId1" Type="%s" Target="../slideMasters/slideMaster1.xml"/>`, relSlideMaster)
	x.raw(`</Relationships>`)
}

const emptyTree = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
	`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

func writeMaster(x *xmlWriter, d *deckgen.Deck) {
	th := d.Theme()
	x.raw(xmlHeader)
	x.printf(`<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	x.raw(`<p:cSld><p:bg><p:bgPr>`)
	writeSolidFill(x, d.Background())
	x.raw(`<a:effectLst/></p:bgPr></p:bg>`)
	x.raw(`<p:spTree>` + emptyTree + `</p:spTree></p:cSld>`)
	x.raw(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2"` +
		` accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	x.raw(`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`)
	x.raw(`<p:txStyles>`)
	for _, style := range []string{"titleStyle", "bodyStyle", "otherStyle"} {
		x.printf(`<p:%s><a:lvl1pPr><a:defRPr sz="%d">`, style, hundredths(th.BulletSize))
		writeSolidFill(x, th.TextPrimary)
		x.printf(`<a:latin typeface="%s"/></a:defRPr></a:lvl1pPr></p:%s>`, esc(th.Font), style)
	}
	x.raw(`</p:txStyles>`)
	x.raw(`</p:sldMaster>`)
}

func writeLayout(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1">`, nsA, nsR, nsP)
	x.raw(`<p:cSld name="Blank"><p:spTree>` + emptyTree + `</p:spTree></p:cSld>`)
	x.raw(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	x.raw(`</p:sldLayout>`)
}

func writeTheme(x *xmlWriter, d *deckgen.Deck) {
	th := d.Theme()
	x.raw(xmlHeader)
	x.printf(`<a:theme xmlns:a="%s" name="deckgen">`, nsA)
	x.raw(`<a:themeElements>`)
	x.raw(`<a:clrScheme name="deckgen">`)
	x.printf(`<a:dk1><a:srgbClr val="%s"/></a:dk1>`, th.TextPrimary.Hex())
	x.printf(`<a:lt1><a:srgbClr val="%s"/></a:lt1>`, d.Background().Hex())
	x.printf(`<a:dk2><a:srgbClr val="%s"/></a:dk2>`, th.TextSecondary.Hex())
	x.printf(`<a:lt2><a:srgbClr val="%s"/></a:lt2>`, th.CodeFill.Hex())
	for i, c := range []string{"4488FF", "FF4466", "00FF88", "9966FF", "FFCC00", "A0A0B0"} {
		x.printf(`<a:accent%d><a:srgbClr val="%s"/></a:accent%d>`, i+1, c, i+1)
	}
	x.raw(`<a:hlink><a:srgbClr val="4488FF"/></a:hlink><a:folHlink><a:srgbClr val="9966FF"/></a:folHlink>`)
	x.raw(`</a:clrScheme>`)
	x.raw(`<a:fontScheme name="deckgen">`)
	for _, f := range []string{"majorFont", "minorFont"} {
		x.printf(`<a:%s><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:%s>`, f, esc(th.Font), f)
	}
	x.raw(`</a:fontScheme>`)
	x.raw(themeFormats)
	x.raw(`</a:themeElements>`)
	x.raw(`<a:objectDefaults/><a:extraClrSchemeLst/>`)
	x.raw(`</a:theme>`)
}

// three of each style are required
const themeFormats = `<a:fmtScheme name="deckgen">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="25400"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>`

func writePresProps(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<p:presentationPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"/>`, nsA, nsR, nsP)
}

func writeViewProps(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<p:viewPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	x.raw(`<p:normalViewPr><p:restoredLeft sz="15620"/><p:restoredTop sz="94660"/></p:normalViewPr>`)
	x.raw(`<p:gridSpacing cx="76200" cy="76200"/>`)
	x.raw(`</p:viewPr>`)
}

func writeTableStyles(x *xmlWriter) {
	x.raw(xmlHeader)
	x.printf(`<a:tblStyleLst xmlns:a="%s" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`, nsA)
}
