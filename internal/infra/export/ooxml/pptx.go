package ooxml

import (
	"fmt"
	"strings"

	"quill/internal/domain/entity"
)

// Slide geometry in EMU for a 16:9 deck.
const (
	pptxSlideWidth  = 12192000
	pptxSlideHeight = 6858000
)

// Hundredths-of-a-point font sizes.
const (
	pptxDeckTitleSize  = 4400
	pptxSlideTitleSize = 3200
	pptxBodySize       = 1800
)

const pptxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`

const pptxSlideMaster = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
</p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>
</p:sldMaster>`

const pptxSlideMasterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`

const pptxSlideLayout = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">
<p:cSld><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
</p:spTree></p:cSld>
<p:clrMapOvr><a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:clrMapOvr>
</p:sldLayout>`

const pptxSlideLayoutRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`

const pptxTheme = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">
<a:themeElements>
<a:clrScheme name="Office">
<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
<a:dk2><a:srgbClr val="44546A"/></a:dk2>
<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
<a:accent1><a:srgbClr val="4472C4"/></a:accent1>
<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
<a:accent4><a:srgbClr val="FFC000"/></a:accent4>
<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
<a:accent6><a:srgbClr val="70AD47"/></a:accent6>
<a:hlink><a:srgbClr val="0563C1"/></a:hlink>
<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
</a:clrScheme>
<a:fontScheme name="Office">
<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
</a:fontScheme>
<a:fmtScheme name="Office">
<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>
<a:lnStyleLst><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>
<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>
<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>
</a:fmtScheme>
</a:themeElements>
</a:theme>`

const pptxSlideRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`

// ExportSlides renders the sections as a PowerPoint deck: a title slide,
// then one slide per section with the heading on top and the content blocks
// in a body text box.
func (e *exporter) ExportSlides(title string, sections []*entity.DocumentSection) ([]byte, error) {
	slideCount := len(sections) + 1

	files := []packageFile{
		{name: "[Content_Types].xml", body: pptxContentTypes(slideCount)},
		{name: "_rels/.rels", body: pptxRootRels},
		{name: "ppt/presentation.xml", body: pptxPresentation(slideCount)},
		{name: "ppt/_rels/presentation.xml.rels", body: pptxPresentationRels(slideCount)},
		{name: "ppt/slideMasters/slideMaster1.xml", body: pptxSlideMaster},
		{name: "ppt/slideMasters/_rels/slideMaster1.xml.rels", body: pptxSlideMasterRels},
		{name: "ppt/slideLayouts/slideLayout1.xml", body: pptxSlideLayout},
		{name: "ppt/slideLayouts/_rels/slideLayout1.xml.rels", body: pptxSlideLayoutRels},
		{name: "ppt/theme/theme1.xml", body: pptxTheme},
	}

	files = append(files,
		packageFile{name: "ppt/slides/slide1.xml", body: pptxTitleSlide(title)},
		packageFile{name: "ppt/slides/_rels/slide1.xml.rels", body: pptxSlideRels},
	)
	for i, section := range sections {
		number := i + 2
		files = append(files,
			packageFile{name: fmt.Sprintf("ppt/slides/slide%d.xml", number), body: pptxSectionSlide(section)},
			packageFile{name: fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", number), body: pptxSlideRels},
		)
	}

	return writePackage(files)
}

func pptxContentTypes(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
`)
	for i := 1; i <= slideCount; i++ {
		sb.WriteString(fmt.Sprintf(`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
`, i))
	}
	sb.WriteString("</Types>")

	return sb.String()
}

func pptxPresentation(slideCount int) string {
	var slideIDs strings.Builder
	for i := 1; i <= slideCount; i++ {
		// Slide ids start at 256 by convention; r:id 1 is the master.
		slideIDs.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst>%s</p:sldIdLst>
<p:sldSz cx="%d" cy="%d"/>
<p:notesSz cx="%d" cy="%d"/>
</p:presentation>`, slideIDs.String(), pptxSlideWidth, pptxSlideHeight, pptxSlideHeight, pptxSlideWidth)
}

func pptxPresentationRels(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
`)
	for i := 1; i <= slideCount; i++ {
		sb.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>
`, i+1, i))
	}
	sb.WriteString("</Relationships>")

	return sb.String()
}

// pptxTitleSlide renders the deck's opening slide with the project title
// centered across the full width.
func pptxTitleSlide(title string) string {
	paragraph := fmt.Sprintf(`<a:p><a:pPr algn="ctr"><a:buNone/></a:pPr>%s</a:p>`,
		pptxRun(textRun{Text: title, Bold: true}, pptxDeckTitleSize))

	shape := pptxTextShape(2, "Title", 838200, 2628900, 10515600, 1600200, paragraph)

	return pptxSlide(shape)
}

// pptxSectionSlide renders one section: heading on top, content blocks below.
func pptxSectionSlide(section *entity.DocumentSection) string {
	titleParagraph := fmt.Sprintf(`<a:p><a:pPr><a:buNone/></a:pPr>%s</a:p>`,
		pptxRun(textRun{Text: section.Heading, Bold: true}, pptxSlideTitleSize))
	titleShape := pptxTextShape(2, "Title", 457200, 274638, 11277600, 1143000, titleParagraph)

	var body strings.Builder
	for _, block := range parseBlocks(section.Content) {
		var runs strings.Builder
		for _, run := range block.Runs {
			runs.WriteString(pptxRun(run, pptxBodySize))
		}

		if block.Bullet {
			body.WriteString(fmt.Sprintf(`<a:p><a:pPr marL="342900" indent="-342900"><a:buChar char="•"/></a:pPr>%s</a:p>`, runs.String()))
		} else {
			body.WriteString(fmt.Sprintf(`<a:p><a:pPr><a:buNone/></a:pPr>%s</a:p>`, runs.String()))
		}
	}
	if body.Len() == 0 {
		// A text body must carry at least one paragraph to be well formed.
		body.WriteString(`<a:p><a:pPr><a:buNone/></a:pPr></a:p>`)
	}
	bodyShape := pptxTextShape(3, "Content", 457200, 1600200, 11277600, 4800600, body.String())

	return pptxSlide(titleShape + bodyShape)
}

func pptxSlide(shapes string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
%s</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sld>`, shapes)
}

// pptxTextShape renders a free-standing text box; placeholders and layout
// inheritance are deliberately avoided so every slide is self-contained.
func pptxTextShape(id int, name string, x, y, cx, cy int, paragraphs string) string {
	return fmt.Sprintf(`<p:sp>
<p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>
<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>%s</p:txBody>
</p:sp>`, id, escape(name), x, y, cx, cy, paragraphs)
}

func pptxRun(run textRun, size int) string {
	bold := "0"
	if run.Bold {
		bold = "1"
	}

	return fmt.Sprintf(`<a:r><a:rPr lang="en-US" sz="%d" b="%s" dirty="0"/><a:t>%s</a:t></a:r>`,
		size, bold, escape(run.Text))
}
