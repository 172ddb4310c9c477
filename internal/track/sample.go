package track

// Sample is the dataset shown before anything is loaded.
const Sample = `#chrom	start	stop	motif	purity	motif_length	repeat_length	repeat_units	info
chr1	0	290	AACCCT	0.98	6	290	48	M:7:0-249-6-1.00,97-119-11-1.00,140-156-7-1.00,172-184-5-1.00,224-240-7-1.00,241-263-7-1.00,255-290-6-1.00:AACCCT,AACCCTAACCC,CCCTAAC,AACCT,CCCTAAC,AACCCTA,AACCCT
chr1	285	333	AACCCC	0.98	6	48	8	M:1:285-326-6-1.00:AACCCC
chr1	321	468	AACCCT	0.97	6	147	24	M:7:323-339-7-1.00,330-392-6-1.00,341-364-11-1.00,383-406-7-1.00,394-468-6-0.97,397-468-6-1.00,433-449-7-1.00:CCCTAAC,AACCCT,ACCCTAACCCT,CCCTAAC,AACCCT,AACCCT,CCCTAAC
chr1	481	499	CCGG	0.83	4	18	4	M:1:485-498-4-1.00:CCCG
chr1	626	814	GGCGCGCCGCGCCGGCGCAGGCGCAGAGA	0.95	29	188	6	M:13:630-642-5-1.00,641-654-6-1.00,659-671-5-1.00,670-683-6-1.00,688-700-5-1.00,699-712-6-1.00,717-729-5-1.00,728-741-6-1.00,746-758-5-1.00,757-770-6-1.00,775-787-5-1.00,781-804-6-0.87,786-799-6-1.00:CCGCG,AGGCGC,CCGCG,AGGCGC,CCGCG,AGGCGC,CCGCG,AGGCGC,CCGCG,AGGCGC,CCGCG,AGGCGC,AGGCGC
chr1	814	1001	AGAGGCGCACCGCGCCGGCGCAGGCGCAGAGACACATGCTAGCGCGTCCAGGGGTGGAGGCGTGGCGCAGGCGCAG	0.97	76	187	2	M:7:829-842-6-1.00,847-863-5-0.94,847-859-5-1.00,858-871-6-1.00,905-918-6-1.00,934-947-6-1.00,981-994-6-1.00:AGGCGC,CCGCG,CCGCG,AGGCGC,AGGCGC,AGGCGC,AGGCGC
chr1	1225	1446	GGGCACTGCAGGGCCCTCTTGCTTACTGTATAGTGGTGGCACGCCGCCTGCTGGCAGCTAG	0.86	61	221	3	I
chr1	1533	1552	AAAT	0.85	4	19	4	I
`
